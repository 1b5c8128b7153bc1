// Command tplxd is a tiny dev server: it upgrades / to a WebSocket and,
// on each incoming JSON message of variables, re-renders the demo
// greeting template and writes the result back as a text frame. Grounded
// on the teacher's pages.go websocket render loop (Handler.servePage's
// "read vars -> render -> write" cycle), stripped down to a single
// connection instead of the teacher's route/scope/component machinery.
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/dpotapov/tplx/document"
	"github.com/dpotapov/tplx/eval"
	"github.com/dpotapov/tplx/tplx"
)

var wsUpgrader = websocket.Upgrader{}

func main() {
	addr := ":8088"
	http.HandleFunc("/", serve)
	log.Printf("tplxd listening on %s", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatal(err)
	}
}

func serve(w http.ResponseWriter, r *http.Request) {
	if !websocket.IsWebSocketUpgrade(r) {
		http.Error(w, "expected a WebSocket upgrade", http.StatusUpgradeRequired)
		return
	}

	ws, err := wsUpgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("upgrade: %v", err)
		return
	}
	defer ws.Close()

	for {
		var vars map[string]any
		if err := ws.ReadJSON(&vars); err != nil {
			if websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				return
			}
			log.Printf("read: %v", err)
			return
		}

		out, err := renderWithVars(vars)
		if err != nil {
			out = fmt.Sprintf("error: %v", err)
		}

		if err := ws.WriteMessage(websocket.TextMessage, []byte(out)); err != nil {
			log.Printf("write: %v", err)
			return
		}
	}
}

func renderWithVars(vars map[string]any) (string, error) {
	ctx := eval.NewRootContext(document.Unit)
	for k, v := range vars {
		s, _ := v.(string)
		if err := ctx.SetPath([]document.Document{document.String(k)}, document.String(s)); err != nil {
			return "", err
		}
	}

	greeting, err := eval.NewOperation("concat", eval.Operations["concat"],
		eval.NewLiteral(document.String("Hello, ")),
		eval.NewVariable("name"),
		eval.NewLiteral(document.String("!")),
	)
	if err != nil {
		return "", err
	}

	return tplx.Render(greeting, ctx)
}
