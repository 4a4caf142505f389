package webapp

import (
	"embed"
	"fmt"
	"io/fs"
	"net"
	"net/http"

	"github.com/sirupsen/logrus"
)

//go:embed pages
var pagesFS embed.FS

// Handler - serves the challenge application. Each challenge page is
// reachable at /<name>.html; the index page links to all of them.
func Handler() http.Handler {
	sub, err := fs.Sub(pagesFS, "pages")
	if err != nil {
		// embed layout is fixed at build time
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}

// Server hosts the challenge application on a loopback port so the suite
// runs self-contained, without an externally deployed target.
type Server struct {
	httpServer *http.Server
	listener   net.Listener
	logger     *logrus.Logger
}

// Start - binds the challenge application to an ephemeral loopback port.
func Start(logger *logrus.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, fmt.Errorf("failed to listen: %w", err)
	}

	server := &Server{
		httpServer: &http.Server{Handler: Handler()},
		listener:   listener,
		logger:     logger,
	}

	go func() {
		if err := server.httpServer.Serve(listener); err != nil && err != http.ErrServerClosed {
			logger.WithError(err).Error("challenge app server stopped")
		}
	}()

	logger.WithField("url", server.URL()).Info("challenge app listening")
	return server, nil
}

// URL - base URL the browser should navigate against.
func (s *Server) URL() string {
	return "http://" + s.listener.Addr().String()
}

// Close - stops the server and releases the port.
func (s *Server) Close() error {
	return s.httpServer.Close()
}
