package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	helper "github.com/lintang-b-s/citynav/pkg/http/router/routerhelper"
	"go.uber.org/zap"
)

type routingAPI struct {
	routingService RoutingService
	validator      *requestValidator
	hub            *Hub
	log            *zap.Logger
}

func New(routingService RoutingService, log *zap.Logger) *routingAPI {
	return &routingAPI{
		routingService: routingService,
		validator:      newRequestValidator(),
		hub:            NewHub(),
		log:            log,
	}
}

func (api *routingAPI) Routes(group *helper.RouteGroup) {
	group.GET("/cities", api.cities)
	group.GET("/roads", api.roads)
	group.GET("/computeRoutes", api.computeRoutes)
	group.GET("/snapRoute", api.snapRoute)
	group.GET("/ws", api.routeWebsocket)
}

// Close. disconnects every websocket client
func (api *routingAPI) Close() {
	api.hub.RemoveAllUser()
}

// cities
//
//	@Summary		list of cities in the road network
//	@Tags			routing
//	@Produce		application/json
//	@Router			/cities [get]
//	@Success		200	{object}	[]cityResponse
func (api *routingAPI) cities(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewCitiesResponse(api.routingService.ListCities())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// roads
//
//	@Summary		list of directed roads in the road network
//	@Tags			routing
//	@Produce		application/json
//	@Router			/roads [get]
//	@Success		200	{object}	[]roadResponse
func (api *routingAPI) roads(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRoadsResponse(api.routingService.ListRoads())}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// computeRoutes
//
//	@Summary		shortest route between two cities by name
//	@Tags			routing
//	@Param			start	query	string	true	"start city name"
//	@Param			end		query	string	true	"end city name"
//	@Produce		application/json
//	@Router			/computeRoutes [get]
//	@Success		200	{object}	routeResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
func (api *routingAPI) computeRoutes(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()
	request := routeRequest{
		Start: query.Get("start"),
		End:   query.Get("end"),
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.routingService.FindRoute(request.Start, request.End)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

// snapRoute
//
//	@Summary		shortest route between the cities nearest to two canvas points
//	@Tags			routing
//	@Param			x1	query	number	true	"origin x"
//	@Param			y1	query	number	true	"origin y"
//	@Param			x2	query	number	true	"destination x"
//	@Param			y2	query	number	true	"destination y"
//	@Produce		application/json
//	@Router			/snapRoute [get]
//	@Success		200	{object}	routeResponse
//	@Failure		400	{object}	errorResponse
//	@Failure		404	{object}	errorResponse
func (api *routingAPI) snapRoute(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var (
		request snapRouteRequest
		err     error
	)

	query := r.URL.Query()
	fields := []struct {
		name string
		dst  *float64
	}{
		{"x1", &request.X1}, {"y1", &request.Y1}, {"x2", &request.X2}, {"y2", &request.Y2},
	}
	for _, f := range fields {
		*f.dst, err = strconv.ParseFloat(query.Get(f.name), 64)
		if err != nil {
			api.BadRequestResponse(w, r, errors.New(f.name+" is required and must be a valid float"))
			return
		}
	}
	if err := api.validator.Struct(request); err != nil {
		api.BadRequestResponse(w, r, err)
		return
	}

	res, err := api.routingService.FindRouteFromPoints(request.X1, request.Y1, request.X2, request.Y2)
	if err != nil {
		api.getStatusCode(w, r, err)
		return
	}

	if err := api.writeJSON(w, http.StatusOK, envelope{"data": NewRouteResponse(res)}, nil); err != nil {
		api.ServerErrorResponse(w, r, err)
	}
}

