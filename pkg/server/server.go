package server

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/corvisa/spellsuggest/internal/logger"
	"github.com/corvisa/spellsuggest/pkg/config"
	"github.com/corvisa/spellsuggest/pkg/suggest"
)

// log is this subsystem's prefixed logger, so server traces are
// distinguishable from the CLI's and the dictionary loader's in a
// shared stdout stream.
var log = logger.New("server")

// Server handles suggestion requests and live config updates over
// MessagePack-encoded stdin/stdout.
type Server struct {
	engine     *suggest.Engine
	config     *config.Config
	configPath string

	decoder *msgpack.Decoder

	writeMutex   sync.Mutex
	requestCount int64
}

// NewServer creates a server over engine, using cfg as the initial
// live configuration (reloaded from configPath periodically).
func NewServer(engine *suggest.Engine, cfg *config.Config, configPath string) *Server {
	return &Server{
		engine:     engine,
		config:     cfg,
		configPath: configPath,
		decoder:    msgpack.NewDecoder(os.Stdin),
	}
}

// Start runs the request loop until stdin closes.
func (s *Server) Start() error {
	log.Debug("starting msgpack suggestion server")
	for {
		if err := s.processRequest(); err != nil {
			if err == io.EOF {
				log.Debug("client disconnected")
				return nil
			}
			log.Debugf("request error: %v", err)
			continue
		}
	}
}

func (s *Server) processRequest() error {
	s.requestCount++
	if s.requestCount%100 == 0 {
		s.reloadConfig()
	}

	var raw map[string]interface{}
	if err := s.decoder.Decode(&raw); err != nil {
		return err
	}

	if action, ok := raw["action"].(string); ok {
		return s.processConfigRequest(raw, action)
	}
	return s.processSuggestRequest(raw)
}

func (s *Server) reloadConfig() {
	cfg, err := config.LoadConfig(s.configPath)
	if err != nil {
		log.Warnf("failed to reload config, keeping current: %v", err)
		return
	}
	s.config = cfg
}

func (s *Server) processSuggestRequest(raw map[string]interface{}) error {
	var req SuggestRequest
	if v, ok := raw["id"].(string); ok {
		req.ID = v
	}
	if v, ok := raw["w"].(string); ok {
		req.Word = v
	}
	req.Limit = intField(raw, "l")
	if v, ok := raw["m"].(string); ok {
		req.Mode = v
	}
	if v, ok := raw["ban"].(bool); ok {
		req.BanBad = v
	}
	if v, ok := raw["cap"].(bool); ok {
		req.NeedCap = v
	}

	if req.Word == "" {
		return s.sendResponse(&SuggestError{ID: req.ID, Error: "empty word", Code: 400})
	}

	opt := suggest.DefaultOptions()
	if req.Limit > 0 {
		opt.MaxCount = req.Limit
	}
	opt.BanBad = req.BanBad
	opt.NeedCap = req.NeedCap
	switch req.Mode {
	case "fast":
		opt.Mode = suggest.Fast
	case "double":
		opt.Mode = suggest.Double
	case "best", "":
		opt.Mode = suggest.Best
	}
	if s.config != nil {
		if s.config.Suggest.TimeoutMS > 0 {
			opt.Timeout = time.Duration(s.config.Suggest.TimeoutMS) * time.Millisecond
		}
		if s.config.Suggest.MaxCount > 0 && req.Limit <= 0 {
			opt.MaxCount = s.config.Suggest.MaxCount
		}
	}

	start := time.Now()
	results := s.engine.Suggest(context.Background(), req.Word, opt)
	elapsed := time.Since(start)

	candidates := make([]SuggestCandidate, len(results))
	for i, r := range results {
		candidates[i] = SuggestCandidate{Word: r.Word, OrigLen: r.OrigLen, Score: r.Score}
	}

	return s.sendResponse(&SuggestResponse{
		ID:         req.ID,
		Candidates: candidates,
		Count:      len(candidates),
		TimeTaken:  elapsed.Microseconds(),
	})
}

func (s *Server) processConfigRequest(raw map[string]interface{}, action string) error {
	var id string
	if v, ok := raw["id"].(string); ok {
		id = v
	}

	switch action {
	case "get":
		return s.sendResponse(&ConfigResponse{ID: id, Status: "ok"})
	case "update":
		var maxCount, timeoutMS *int
		var mode *string
		if v, ok := raw["max_count"]; ok {
			n := toInt(v)
			maxCount = &n
		}
		if v, ok := raw["timeout_ms"]; ok {
			n := toInt(v)
			timeoutMS = &n
		}
		if v, ok := raw["mode"].(string); ok {
			mode = &v
		}
		if err := s.config.Update(s.configPath, maxCount, timeoutMS, mode); err != nil {
			return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: err.Error()})
		}
		s.reloadConfig()
		return s.sendResponse(&ConfigResponse{ID: id, Status: "ok"})
	default:
		return s.sendResponse(&ConfigResponse{ID: id, Status: "error", Error: fmt.Sprintf("unknown action: %s", action)})
	}
}

func (s *Server) sendResponse(response any) error {
	s.writeMutex.Lock()
	defer s.writeMutex.Unlock()

	var buf bytes.Buffer
	if err := msgpack.NewEncoder(&buf).Encode(response); err != nil {
		return fmt.Errorf("encode response: %w", err)
	}
	if _, err := os.Stdout.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("write response: %w", err)
	}
	return os.Stdout.Sync()
}

func intField(raw map[string]interface{}, key string) int {
	v, ok := raw[key]
	if !ok {
		return 0
	}
	return toInt(v)
}

func toInt(v interface{}) int {
	switch n := v.(type) {
	case int:
		return n
	case int64:
		return int(n)
	case float64:
		return int(n)
	default:
		return 0
	}
}
