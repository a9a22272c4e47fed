package realtime

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

// RegisterRoutes memasang endpoint /ws.
// Klien memilih tabel lewat query: /ws?tables=contact,footer,news
// (tanpa query = semua tabel).
func RegisterRoutes(app *fiber.App) {
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	app.Get("/ws", websocket.New(func(conn *websocket.Conn) {
		var tables []string
		if q := conn.Query("tables"); q != "" {
			for _, t := range strings.Split(q, ",") {
				tables = append(tables, strings.TrimSpace(t))
			}
		}

		sub := DefaultHub.Subscribe(tables)
		defer DefaultHub.Unsubscribe(sub)

		// reader hanya untuk mendeteksi close dari klien
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case ev, ok := <-sub.C:
				if !ok {
					return
				}
				if err := conn.WriteJSON(ev); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}))
}
