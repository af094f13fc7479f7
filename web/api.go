package web

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"code.cloudfoundry.org/bytefmt"

	"github.com/raako71/RClone-Diff/compare"
	fs "github.com/raako71/RClone-Diff/storage/fs"
)

// Server holds the comparison state the HTTP endpoints operate on. The
// last result is shared with the serve loop, so every access goes
// through the mutex.
type Server struct {
	engine       *compare.Engine
	orchestrator *compare.Orchestrator
	source       fs.Location
	destination  fs.Location

	mu   sync.Mutex
	last *compare.Result
}

var (
	instance *Server
	once     sync.Once
)

func GetInstance() *Server {
	once.Do(func() {
		instance = &Server{}
	})
	return instance
}

func (s *Server) Configure(engine *compare.Engine, orchestrator *compare.Orchestrator, source, destination fs.Location) {
	s.engine = engine
	s.orchestrator = orchestrator
	s.source = source.Normalized()
	s.destination = destination.Normalized()
}

// Compare runs a fresh comparison and replaces the shared result.
// Concurrent calls are serialized.
func (s *Server) Compare(ctx context.Context) (*compare.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	result, err := s.engine.Run(ctx, s.source, s.destination)
	if err != nil {
		return nil, err
	}

	s.last = result
	return result, nil
}

// Sync hands the last result to the orchestrator. A successful sync
// invalidates the result, so another sync needs a fresh comparison.
func (s *Server) Sync(ctx context.Context, confirmed bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.orchestrator.Run(ctx, s.last, confirmed); err != nil {
		return err
	}

	s.last = nil
	return nil
}

func (s *Server) LastResult() *compare.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}

type statusResponse struct {
	Source        string   `json:"source"`
	Destination   string   `json:"destination"`
	HasComparison bool     `json:"hasComparison"`
	LastRun       *runInfo `json:"lastRun,omitempty"`
}

type runInfo struct {
	StartedAt time.Time `json:"startedAt"`
	Duration  string    `json:"duration"`
	New       int       `json:"new"`
	Modified  int       `json:"modified"`
	Deleted   int       `json:"deleted"`
	Unchanged int       `json:"unchanged"`
	TotalSize string    `json:"totalSize"`
}

func newStatusResponse(s *Server, last *compare.Result) *statusResponse {
	response := &statusResponse{
		Source:        s.source.String(),
		Destination:   s.destination.String(),
		HasComparison: last != nil,
	}

	if last != nil {
		response.LastRun = &runInfo{
			StartedAt: last.StartedAt,
			Duration:  last.Duration.Round(time.Millisecond).String(),
			New:       last.New,
			Modified:  last.Modified,
			Deleted:   last.Deleted,
			Unchanged: last.Unchanged,
			TotalSize: bytefmt.ByteSize(last.TotalBytes),
		}
	}

	return response
}

func writeData(w http.ResponseWriter, data interface{}) {
	b, err := json.Marshal(data)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		errStr := err.Error()
		_, _ = w.Write([]byte(errStr))
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	_, err = w.Write(b)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
