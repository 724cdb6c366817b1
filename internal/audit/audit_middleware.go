package audit

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// RecordMutations logs every successful write made through the console as
// a form_submit event, and exports or template downloads as export or
// download events.
func RecordMutations(recorder Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		if status < 200 || status > 299 {
			return
		}

		tipo, ok := classify(c.Request.Method, c.FullPath())
		if !ok {
			return
		}

		e := requestEvent(c)
		e.Tipo = tipo
		e.Accion = c.Request.Method + " " + c.FullPath()
		e.Pagina = c.Request.URL.Path
		e.Detalle = map[string]any{"status": status}
		if id := c.Param("id"); id != "" {
			e.Detalle["id"] = id
		}
		recorder.Log(e)
	}
}

// readOnlyPosts are POST routes that change nothing.
var readOnlyPosts = []string{"/audit/events", "/rbac/enforce", "/locations/validate"}

func classify(method, route string) (EventType, bool) {
	if route == "" {
		return "", false
	}
	for _, suffix := range readOnlyPosts {
		if strings.HasSuffix(route, suffix) {
			return "", false
		}
	}

	switch method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return EventFormSubmit, true
	case http.MethodGet:
		switch {
		case strings.HasSuffix(route, "/export"):
			return EventExport, true
		case strings.HasSuffix(route, "/template"):
			return EventDownload, true
		}
	}
	return "", false
}
