package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
	"unicode/utf8"

	"github.com/bastiangx/wordseg/internal/logger"
	"github.com/bastiangx/wordseg/pkg/config"
	"github.com/bastiangx/wordseg/pkg/segment"
	"github.com/bastiangx/wordseg/pkg/trie"
	"github.com/bastiangx/wordseg/pkg/vocab"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	codeBadRequest    = 400
	codeTooLarge      = 413
	codeInternalError = 500
)

// Server handles the IPC for segmentation requests
type Server struct {
	dict         *trie.Trie
	segmenter    *segment.Segmenter
	known        *vocab.Lexicon
	config       *config.Config
	decoder      *msgpack.Decoder
	encoder      *msgpack.Encoder
	logger       *log.Logger
	requestCount int
}

// NewServer creates a server using stdin/stdout for IPC.
func NewServer(dict *trie.Trie, known *vocab.Lexicon, cfg *config.Config) *Server {
	return NewServerWithIO(dict, known, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
// A nil known set starts empty; a nil config uses the defaults.
func NewServerWithIO(dict *trie.Trie, known *vocab.Lexicon, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if known == nil {
		known = vocab.NewLexicon()
	}
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		dict:      dict,
		segmenter: segment.New(dict),
		known:     known,
		config:    cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		logger:    logger.New("server"),
	}
}

// Start announces readiness and serves requests until the input ends.
func (s *Server) Start() error {
	s.logger.Debug("Starting Server.")
	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		// one whole msgpack value per request, so a malformed one can be skipped
		raw, err := s.decoder.DecodeRaw()
		if err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			s.logger.Errorf("Reading request: %v", err)
			return fmt.Errorf("failed to read request: %w", err)
		}
		s.requestCount++

		var request Request
		if err := msgpack.Unmarshal(raw, &request); err != nil {
			s.logger.Errorf("Unmarshaling request: %v", err)
			s.sendError("", "Invalid msgpack request", codeBadRequest)
			continue
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	s.logger.Debug("Request", "id", request.ID, "op", request.Op)

	switch request.Op {
	case "segment":
		s.handleSegment(request)
	case "unknown":
		s.handleUnknown(request)
	case "search":
		s.handleSearch(request)
	case "prefix":
		s.handlePrefix(request, s.dict.FindAllWithPrefix)
	case "known_prefix":
		s.handlePrefix(request, func(prefix string) []string {
			return s.known.WithPrefix(prefix, 0)
		})
	case "add_known":
		s.handleAddKnown(request)
	case "health":
		s.sendResponse(StatusResponse{
			ID:     request.ID,
			Status: "ok",
			Words:  s.dict.Size(),
			Known:  s.known.Len(),
		})
	case "":
		s.sendError(request.ID, "Missing 'op' parameter", codeBadRequest)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), codeBadRequest)
	}
}

// checkLength rejects inputs longer than the configured limit, counted in characters.
func (s *Server) checkLength(id, field, value string) bool {
	limit := s.config.Server.MaxTextLen
	if limit > 0 && utf8.RuneCountInString(value) > limit {
		s.sendError(id, fmt.Sprintf("'%s' exceeds maximum length of %d characters", field, limit), codeTooLarge)
		s.logger.Debugf("Rejected %s of %d bytes", field, len(value))
		return false
	}
	return true
}

func (s *Server) handleSegment(request Request) {
	if !s.checkLength(request.ID, "text", request.Text) {
		return
	}

	start := time.Now()
	tokens := s.segmenter.Tokens(request.Text)
	result := make([]Token, len(tokens))
	for i, tok := range tokens {
		result[i] = Token{Text: tok.Text, Start: tok.Start, End: tok.End, Known: tok.Known}
	}

	s.sendResponse(SegmentResponse{
		ID:        request.ID,
		Tokens:    result,
		Count:     len(result),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleUnknown(request Request) {
	if !s.checkLength(request.ID, "text", request.Text) {
		return
	}

	start := time.Now()
	unknown := vocab.Unknown(s.known, s.segmenter.Segment(request.Text))
	if s.config.Output.FilterNoise {
		unknown = vocab.FilterNoise(unknown)
	}
	words := unknown.Sorted()

	s.sendResponse(WordsResponse{
		ID:        request.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleSearch(request Request) {
	if request.Text == "" {
		s.sendError(request.ID, "Missing 'text' parameter", codeBadRequest)
		return
	}
	if !s.checkLength(request.ID, "text", request.Text) {
		return
	}
	s.sendResponse(SearchResponse{
		ID:    request.ID,
		Word:  request.Text,
		Found: s.dict.Search(request.Text),
	})
}

// handlePrefix serves both prefix ops; lookup lists every match and the
// result is capped here.
func (s *Server) handlePrefix(request Request, lookup func(string) []string) {
	if request.Prefix == "" {
		s.sendError(request.ID, "Missing 'prefix' parameter", codeBadRequest)
		return
	}
	if !s.checkLength(request.ID, "prefix", request.Prefix) {
		return
	}

	limit := s.config.Server.MaxPrefixResults
	if request.Limit > 0 && (limit <= 0 || request.Limit < limit) {
		limit = request.Limit
	}

	start := time.Now()
	words := lookup(request.Prefix)
	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}

	s.sendResponse(WordsResponse{
		ID:        request.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: time.Since(start).Microseconds(),
	})
}

func (s *Server) handleAddKnown(request Request) {
	if len(request.Words) == 0 {
		s.sendError(request.ID, "Missing 'words' parameter", codeBadRequest)
		return
	}

	added := 0
	for _, word := range request.Words {
		if s.known.Add(word) {
			added++
		}
	}
	s.logger.Debugf("Added %d of %d known words", added, len(request.Words))

	s.sendResponse(StatusResponse{
		ID:     request.ID,
		Status: "ok",
		Added:  added,
		Known:  s.known.Len(),
	})
}

// sendResponse encodes the response onto the output stream.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.logger.Errorf("Encoding response: %v", err)
		s.sendError("", "Internal server error", codeInternalError)
	}
}

func (s *Server) sendError(id, message string, code int) {
	if err := s.encoder.Encode(ErrorResponse{ID: id, Error: message, Code: code}); err != nil {
		s.logger.Errorf("Encoding error response: %v", err)
	}
}
