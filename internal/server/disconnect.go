package server

import (
	"bytes"
	"errors"
	"io"
	"log"
	"net"
	"net/http"
)

// IsDisconnect reports whether err means the client went away.
func IsDisconnect(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, net.ErrClosed) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, http.ErrAbortHandler) ||
		isResetErrno(err)
}

// DisconnectGuard stops a handler from reporting a vanished client.
// The first write failing with a disconnect error marks the response as
// aborted and later writes are dropped. A panic carrying a disconnect
// error is swallowed; any other panic continues up the chain.
func DisconnectGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gw := &guardedWriter{ResponseWriter: w}

		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if err, ok := rec.(error); ok && IsDisconnect(err) {
				return
			}
			panic(rec)
		}()

		next.ServeHTTP(gw, r)
	})
}

// guardedWriter remembers the first disconnect error.
type guardedWriter struct {
	http.ResponseWriter
	err error
}

func (g *guardedWriter) Write(p []byte) (int, error) {
	if g.err != nil {
		return 0, g.err
	}
	n, err := g.ResponseWriter.Write(p)
	g.observe(err)
	return n, err
}

// ReadFrom keeps the sendfile path of the underlying writer.
func (g *guardedWriter) ReadFrom(src io.Reader) (int64, error) {
	if g.err != nil {
		return 0, g.err
	}
	var (
		n   int64
		err error
	)
	if rf, ok := g.ResponseWriter.(io.ReaderFrom); ok {
		n, err = rf.ReadFrom(src)
	} else {
		n, err = io.Copy(writerOnly{g.ResponseWriter}, src)
	}
	g.observe(err)
	return n, err
}

func (g *guardedWriter) Unwrap() http.ResponseWriter {
	return g.ResponseWriter
}

func (g *guardedWriter) observe(err error) {
	if IsDisconnect(err) {
		g.err = err
	}
}

// writerOnly hides ReadFrom so io.Copy does not recurse.
type writerOnly struct {
	io.Writer
}

// disconnectMarkers are the texts net/http logs for client disconnects.
var disconnectMarkers = [][]byte{
	[]byte("broken pipe"),
	[]byte("connection reset by peer"),
	[]byte("use of closed network connection"),
	[]byte("An established connection was aborted"),
	[]byte("An existing connection was forcibly closed"),
}

// QuietErrorLog returns a logger for http.Server.ErrorLog that writes to
// out but drops lines about client disconnects.
func QuietErrorLog(out io.Writer) *log.Logger {
	return log.New(quietWriter{out: out}, "", log.LstdFlags)
}

type quietWriter struct {
	out io.Writer
}

func (q quietWriter) Write(p []byte) (int, error) {
	for _, m := range disconnectMarkers {
		if bytes.Contains(p, m) {
			return len(p), nil
		}
	}
	return q.out.Write(p)
}
