package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/signadot/orafile/ir"

	"github.com/charmbracelet/log"
)

type debug struct {
	Load   atomic.Bool
	Render atomic.Bool
	Select atomic.Bool
}

var (
	d *debug

	mu     sync.Mutex
	logger *log.Logger
)

func init() {
	d = &debug{}
	d.Load.Store(boolEnv("ORAFILE_DEBUG_LOAD"))
	d.Render.Store(boolEnv("ORAFILE_DEBUG_RENDER"))
	d.Select.Store(boolEnv("ORAFILE_DEBUG_SELECT"))
	logger = newLogger(os.Stderr)
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           log.DebugLevel,
		Prefix:          "orafile",
	})
}

func Load() bool {
	return d.Load.Load()
}
func Render() bool {
	return d.Render.Load()
}
func Select() bool {
	return d.Select.Load()
}

// EnableAll turns on every debug switch. It is safe to call while other
// goroutines consult the switches.
func EnableAll() {
	d.Load.Store(true)
	d.Render.Store(true)
	d.Select.Store(true)
}

// SetOutput redirects debug logging to w.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	logger = newLogger(w)
}

func Logf(msg string, args ...any) {
	for i := range args {
		switch x := args[i].(type) {
		case *ir.Dict, map[string]any, []any:
			b, err := json.MarshalIndent(x, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", x)
				continue
			}
			args[i] = string(b)
		}
	}
	mu.Lock()
	l := logger
	mu.Unlock()
	l.Debugf(msg, args...)
}
