package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"net/url"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/df07/go-live-raytracer/pkg/renderer"
	"github.com/df07/go-live-raytracer/pkg/scene"
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene      string `json:"scene"`      // Built-in scene ID or "file:<name>"
	Width      int    `json:"width"`      // Image width, 0 keeps the scene's width
	MaxSamples int    `json:"maxSamples"` // Samples per pixel before the render idles, 0 = scene default
	MaxDepth   int    `json:"maxDepth"`   // Maximum ray bounce depth, 0 = scene default
	Seed       uint64 `json:"seed"`
}

// SessionInfo is the first event of every render stream
type SessionInfo struct {
	ID     string `json:"id"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// ProgressUpdate represents a single progressive update sent via SSE
type ProgressUpdate struct {
	PassNumber int    `json:"passNumber"`
	Sample     int    `json:"sample"`    // Samples per pixel since the last camera move
	ImageData  string `json:"imageData"` // Base64 encoded PNG
	Stats      Stats  `json:"stats"`
	Reset      bool   `json:"reset"`      // The accumulation restarted on this pass
	IsComplete bool   `json:"isComplete"` // The sample cap is reached
	PassMs     int64  `json:"passMs"`
	ElapsedMs  int64  `json:"elapsedMs"`
}

// Stats represents render statistics
type Stats struct {
	TotalPixels    int     `json:"totalPixels"`
	TotalSamples   int64   `json:"totalSamples"`
	AverageSamples float64 `json:"averageSamples"`
	MinSamples     int     `json:"minSamples"`
	MaxSamplesUsed int     `json:"maxSamplesUsed"`
}

var sessionCounter atomic.Int64

func newSessionID() string {
	return fmt.Sprintf("render-%d-%d", time.Now().UnixNano(), sessionCounter.Add(1))
}

// parseRenderRequest parses request parameters
func parseRenderRequest(values url.Values) (*RenderRequest, error) {
	req := &RenderRequest{Scene: "default", Seed: 42}
	if sceneRef := values.Get("scene"); sceneRef != "" {
		req.Scene = sceneRef
	}

	var err error
	if req.Width, err = parseIntParam(values, "width", 0, 16, 2000); err != nil {
		return nil, err
	}
	if req.MaxSamples, err = parseIntParam(values, "maxSamples", 0, 1, 100000); err != nil {
		return nil, err
	}
	if req.MaxDepth, err = parseIntParam(values, "maxDepth", 0, 1, 1000); err != nil {
		return nil, err
	}
	if seed := values.Get("seed"); seed != "" {
		if req.Seed, err = strconv.ParseUint(seed, 10, 64); err != nil {
			return nil, fmt.Errorf("invalid seed: %s", seed)
		}
	}

	return req, nil
}

// setupScene loads the requested scene and applies the request overrides
func (s *Server) setupScene(req *RenderRequest) (*scene.Scene, error) {
	sceneObj, err := scene.Load(req.Scene, s.config.ScenesDir)
	if err != nil {
		return nil, err
	}

	if req.Width > 0 {
		sceneObj.CameraConfig.Width = req.Width
	}
	if req.MaxDepth > 0 {
		sceneObj.SamplingConfig.MaxDepth = req.MaxDepth
	}
	if req.MaxSamples == 0 {
		req.MaxSamples = sceneObj.SamplingConfig.SamplesPerPixel
	}

	return sceneObj, nil
}

// handleRender streams progressive passes via SSE until the client disconnects.
// The first event names the session so the client can post camera moves.
func (s *Server) handleRender(c echo.Context) error {
	req, err := parseRenderRequest(c.QueryParams())
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request: " + err.Error()})
	}

	sceneObj, err := s.setupScene(req)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scene.ErrUnknownScene) || errors.Is(err, scene.ErrInvalidScene) {
			status = http.StatusBadRequest
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	id := newSessionID()
	consoleChan := make(chan ConsoleMessage, 50)
	webLogger := NewWebLogger(id, s.logger, consoleChan)

	raytracer, err := renderer.NewProgressiveRaytracer(sceneObj, renderer.ProgressiveConfig{
		MaxSamplesPerPixel: req.MaxSamples,
		NumWorkers:         s.config.NumWorkers,
		Seed:               req.Seed,
	}, webLogger)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	info := SessionInfo{ID: id, Width: raytracer.Buffer().Width(), Height: raytracer.Buffer().Height()}

	ctx, cancel := context.WithCancel(c.Request().Context())
	passChan, errChan := raytracer.RenderProgressive(ctx)

	s.addSession(&session{id: id, raytracer: raytracer, cancel: cancel})
	defer func() {
		cancel()
		// The render goroutine must be done before its workers are stopped
		for range passChan {
		}
		s.removeSession(id)
		raytracer.Close()
	}()

	s.setSSEHeaders(c)
	c.Response().WriteHeader(http.StatusOK)

	if err := s.sendSSEJSON(c, "session", info); err != nil {
		return nil
	}

	startTime := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil

		case msg := <-consoleChan:
			if err := s.sendSSEJSON(c, "console", msg); err != nil {
				return nil
			}

		case result, ok := <-passChan:
			if !ok {
				return nil
			}
			update, err := newProgressUpdate(result, req.MaxSamples, startTime)
			if err != nil {
				s.sendSSEEvent(c, "error", fmt.Sprintf("failed to encode image: %v", err))
				return nil
			}
			if err := s.sendSSEJSON(c, "progress", update); err != nil {
				return nil
			}

		case err, ok := <-errChan:
			if ok && err != nil && !errors.Is(err, context.Canceled) {
				s.sendSSEEvent(c, "error", fmt.Sprintf("Render error: %v", err))
			}
			return nil
		}
	}
}

// newProgressUpdate converts a pass result to its wire form
func newProgressUpdate(result renderer.PassResult, maxSamples int, startTime time.Time) (ProgressUpdate, error) {
	imageData, err := imageToBase64PNG(result.Image)
	if err != nil {
		return ProgressUpdate{}, err
	}

	return ProgressUpdate{
		PassNumber: result.PassNumber,
		Sample:     result.Sample,
		ImageData:  imageData,
		Stats: Stats{
			TotalPixels:    result.Stats.TotalPixels,
			TotalSamples:   int64(result.Stats.TotalSamples),
			AverageSamples: result.Stats.AverageSamples,
			MinSamples:     result.Stats.MinSamples,
			MaxSamplesUsed: result.Stats.MaxSamplesUsed,
		},
		Reset:      result.Reset,
		IsComplete: maxSamples > 0 && result.Sample >= maxSamples,
		PassMs:     result.Duration.Milliseconds(),
		ElapsedMs:  time.Since(startTime).Milliseconds(),
	}, nil
}

// MoveRequest is the body of a camera move
type MoveRequest struct {
	Direction string `json:"direction"` // right, left, up, down, forward or back
}

// handleMove queues a camera move on a running session
func (s *Server) handleMove(c echo.Context) error {
	sess, ok := s.getSession(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "Unknown render session: " + c.Param("id")})
	}

	var req MoveRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Failed to parse request: " + err.Error()})
	}

	cmd, err := renderer.ParseMoveCommand(req.Direction)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	sess.raytracer.Move(cmd)
	return c.JSON(http.StatusOK, map[string]string{
		"status":    "queued",
		"direction": cmd.String(),
	})
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(c echo.Context) {
	header := c.Response().Header()
	header.Set(echo.HeaderContentType, "text/event-stream")
	header.Set("Cache-Control", "no-cache")
	header.Set("Connection", "keep-alive")
}

// sendSSEJSON sends a JSON encoded SSE event
func (s *Server) sendSSEJSON(c echo.Context, event string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return s.sendSSEEvent(c, event, string(data))
}

// sendSSEEvent sends a generic SSE event
func (s *Server) sendSSEEvent(c echo.Context, event, data string) error {
	if _, err := fmt.Fprintf(c.Response(), "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	c.Response().Flush()
	return nil
}

// imageToBase64PNG converts an image to base64-encoded PNG
func imageToBase64PNG(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}
