package api

import (
	"github.com/coder/websocket"
	echo "github.com/labstack/echo/v5"
)

// wsHandler handles GET /ws: upgrades to WebSocket and hands the
// connection to the ConnectionManager. Authentication rides on the
// token query parameter because browsers cannot set headers on
// WebSocket upgrades; a bad token closes the socket with 1008 after
// the upgrade so the client sees a protocol-level rejection instead of
// a failed handshake.
func (s *Server) wsHandler(c *echo.Context) error {
	if s.connManager == nil {
		return echo.NewHTTPError(503, "WebSocket not available")
	}

	conn, err := websocket.Accept(c.Response(), c.Request(), &websocket.AcceptOptions{
		// Browser origin enforcement happens in the CORS layer for the
		// REST surface; the socket accepts any origin and relies on
		// token auth.
		InsecureSkipVerify: true,
	})
	if err != nil {
		return err
	}

	userID := s.auth.defaultUser
	if s.auth.enabled {
		userID, err = s.auth.parseToken(c.QueryParam("token"))
		if err != nil {
			_ = conn.Close(websocket.StatusPolicyViolation, "invalid token")
			return nil
		}
	}

	// HandleConnection blocks until the WebSocket closes.
	s.connManager.HandleConnection(c.Request().Context(), conn, userID)
	return nil
}
