package controllers

import (
	"encoding/json"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gobwas/ws"
	"github.com/gobwas/ws/wsutil"
	"github.com/julienschmidt/httprouter"
	"go.uber.org/zap"
)

// User. one websocket client, every text frame {start, end} is answered with a route frame
type User struct {
	io   sync.Mutex
	conn io.ReadWriteCloser

	id  uint
	hub *Hub
}

// readFrame. payload of the next data frame, nil for control frames
func (u *User) readFrame() ([]byte, error) {
	u.io.Lock()
	defer u.io.Unlock()

	h, r, err := wsutil.NextReader(u.conn, ws.StateServerSide)
	if err != nil {
		return nil, err
	}
	if h.OpCode.IsControl() {
		return nil, wsutil.ControlFrameHandler(u.conn, ws.StateServerSide)(h, r)
	}

	return io.ReadAll(r)
}

func (u *User) write(x interface{}) error {
	w := wsutil.NewWriter(u.conn, ws.StateServerSide, ws.OpText)
	encoder := json.NewEncoder(w)

	u.io.Lock()
	defer u.io.Unlock()

	if err := encoder.Encode(x); err != nil {
		return err
	}

	return w.Flush()
}

// answer. route frame for one request payload, errors in the request are answered not returned
func (api *routingAPI) answer(payload []byte) envelope {
	var req routeRequest
	if err := json.Unmarshal(payload, &req); err != nil {
		return newErrorEnvelope(http.StatusBadRequest, err.Error())
	}
	if err := api.validator.Struct(req); err != nil {
		return newErrorEnvelope(http.StatusBadRequest, err.Error())
	}

	res, err := api.routingService.FindRoute(req.Start, req.End)
	if err != nil {
		status := statusCodeOf(err)
		return newErrorEnvelope(status, err.Error())
	}
	return envelope{"data": NewRouteResponse(res)}
}

func (api *routingAPI) serve(user *User) {
	defer api.hub.Remove(user)
	for {
		payload, err := user.readFrame()
		if err != nil {
			api.log.Debug("websocket client disconnected", zap.Uint("user", user.id), zap.Error(err))
			return
		}
		if payload == nil {
			continue
		}
		if err := user.write(api.answer(payload)); err != nil {
			api.log.Error("error writing websocket frame", zap.Uint("user", user.id), zap.Error(err))
			return
		}
	}
}

// routeWebsocket
//
//	@Summary		websocket route queries, send {"start": "...", "end": "..."} text frames
//	@Tags			routing
//	@Router			/ws [get]
func (api *routingAPI) routeWebsocket(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	conn, _, hs, err := ws.UpgradeHTTP(r, w)
	if err != nil {
		api.log.Info("upgrade error", zap.Error(err))
		return
	}
	// deadlines of the http server do not apply to a long lived connection
	_ = conn.SetDeadline(time.Time{})

	user := api.hub.Register(conn)
	api.log.Info("established websocket connection", zap.String("connection name", nameConn(conn)),
		zap.String("protocol", hs.Protocol), zap.Uint("user", user.id))

	go api.serve(user)
}

func nameConn(conn net.Conn) string {
	return conn.LocalAddr().String() + " > " + conn.RemoteAddr().String()
}

// Hub. connected websocket users
type Hub struct {
	mu  sync.RWMutex
	seq uint
	ns  map[uint]*User
}

func NewHub() *Hub {
	return &Hub{
		ns: make(map[uint]*User),
	}
}

func (h *Hub) Register(conn io.ReadWriteCloser) *User {
	user := &User{
		hub:  h,
		conn: conn,
	}

	h.mu.Lock()
	user.id = h.seq
	h.ns[user.id] = user
	h.seq++
	h.mu.Unlock()

	return user
}

// Remove. unregisters user and closes its connection
func (h *Hub) Remove(user *User) {
	h.mu.Lock()
	_, ok := h.ns[user.id]
	delete(h.ns, user.id)
	h.mu.Unlock()

	if ok {
		_ = user.conn.Close()
	}
}

func (h *Hub) RemoveAllUser() {
	h.mu.RLock()
	users := make([]*User, 0, len(h.ns))
	for _, u := range h.ns {
		users = append(users, u)
	}
	h.mu.RUnlock()

	for _, u := range users {
		h.Remove(u)
	}
}

func (h *Hub) Len() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.ns)
}
