package api

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/barnettben/Datastream/pkg/codec"
	"github.com/barnettben/Datastream/pkg/datastream"
	"github.com/barnettben/Datastream/pkg/storage"
)

// handleHealth godoc
//
//	@Summary		Health check
//	@Description	Get the health status of the API and the number of stored files
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]interface{}
//	@Failure		503	{object}	APIResponse
//	@Router			/health [get]
//	@Security		ApiKeyAuth
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	entries, err := s.archive.List()
	if err != nil {
		s.metrics.RecordHealthCheck(false)
		s.log.Error("Health check failed", zap.Error(err))
		sendError(w, "Archive unavailable", http.StatusServiceUnavailable)
		return
	}
	s.metrics.RecordHealthCheck(true)
	sendSuccess(w, map[string]interface{}{"status": "healthy", "datastreams": len(entries)})
}

// handleUpload godoc
//
//	@Summary		Upload a Datastream file
//	@Description	Parse the request body as a Datastream file and store the result
//	@Tags			datastreams
//	@Accept			plain
//	@Produce		json
//	@Param			strict	query		bool	false	"Validate length and checksum of every record"
//	@Param			source	query		string	false	"Name recorded with the stored file"
//	@Success		201		{object}	storage.Entry
//	@Failure		400		{object}	APIResponse
//	@Failure		413		{object}	APIResponse
//	@Failure		422		{object}	APIResponse
//	@Router			/datastreams [post]
//	@Security		ApiKeyAuth
func (s *Server) handleUpload(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	strict := s.config.Strict
	if v := query.Get("strict"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			sendError(w, "Invalid strict parameter", http.StatusBadRequest)
			return
		}
		strict = b
	}

	source := query.Get("source")
	if source == "" {
		source = "upload"
	}

	var body io.Reader = r.Body
	if limit := s.config.MaxUploadSize; limit > 0 {
		if r.ContentLength > limit {
			sendError(w, "Upload exceeds the maximum size", http.StatusRequestEntityTooLarge)
			return
		}
		body = http.MaxBytesReader(w, r.Body, limit)
	}
	counter := &countingReader{r: body}

	start := time.Now()
	doc, err := datastream.ParseReader(r.Context(), counter, datastream.Options{Strict: strict, Logger: s.log})
	animals := 0
	if doc != nil {
		animals = len(doc.Animals)
	}
	s.metrics.RecordParse(err == nil, counter.n, animals, time.Since(start))

	if err != nil {
		var tooLarge *http.MaxBytesError
		var decodeErr *codec.Error
		switch {
		case errors.As(err, &tooLarge), errors.As(counter.err, &tooLarge):
			sendError(w, "Upload exceeds the maximum size", http.StatusRequestEntityTooLarge)
		case errors.As(err, &decodeErr):
			s.log.Info("Rejected upload", zap.String("source", source), zap.Error(err))
			sendError(w, err.Error(), http.StatusUnprocessableEntity)
		default:
			s.log.Warn("Failed to read upload", zap.String("source", source), zap.Error(err))
			sendError(w, "Failed to read upload", http.StatusBadRequest)
		}
		return
	}

	start = time.Now()
	entry, err := s.archive.Put(source, doc)
	s.metrics.RecordArchiveOperation("put", err == nil, time.Since(start))
	if err != nil {
		s.sendArchiveError(w, err)
		return
	}

	s.log.Info("Stored datastream",
		zap.String("id", entry.ID),
		zap.String("source", source),
		zap.Int("animals", animals),
	)
	sendJSON(w, http.StatusCreated, entry)
}

// handleList godoc
//
//	@Summary		List stored files
//	@Description	List every stored file, newest first
//	@Tags			datastreams
//	@Produce		json
//	@Success		200	{array}	storage.Entry
//	@Router			/datastreams [get]
//	@Security		ApiKeyAuth
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entries, err := s.archive.List()
	s.metrics.RecordArchiveOperation("list", err == nil, time.Since(start))
	if err != nil {
		s.sendArchiveError(w, err)
		return
	}
	sendSuccess(w, entries)
}

// handleGet godoc
//
//	@Summary		Get a stored file
//	@Description	Get the full parsed document
//	@Tags			datastreams
//	@Produce		json
//	@Param			id	path		string	true	"Datastream id"
//	@Success		200	{object}	datastream.Document
//	@Failure		400	{object}	APIResponse
//	@Failure		404	{object}	APIResponse
//	@Router			/datastreams/{id} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}
	sendSuccess(w, doc)
}

// handleSummary godoc
//
//	@Summary		Summarise a stored file
//	@Tags			datastreams
//	@Produce		json
//	@Param			id	path		string	true	"Datastream id"
//	@Success		200	{object}	datastream.Summary
//	@Failure		404	{object}	APIResponse
//	@Router			/datastreams/{id}/summary [get]
//	@Security		ApiKeyAuth
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	entry, err := s.archive.Entry(chi.URLParam(r, "id"))
	s.metrics.RecordArchiveOperation("entry", err == nil, time.Since(start))
	if err != nil {
		s.sendArchiveError(w, err)
		return
	}
	sendSuccess(w, entry.Summary)
}

// handleAnimal godoc
//
//	@Summary		Get one animal
//	@Description	Get an animal with its statement and completed lactations
//	@Tags			datastreams
//	@Produce		json
//	@Param			id		path		string	true	"Datastream id"
//	@Param			line	path		string	true	"Herd line number"
//	@Success		200		{object}	AnimalView
//	@Failure		404		{object}	APIResponse
//	@Router			/datastreams/{id}/animals/{line} [get]
//	@Security		ApiKeyAuth
func (s *Server) handleAnimal(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.document(w, r)
	if !ok {
		return
	}

	line := chi.URLParam(r, "line")
	animal, found := doc.Animal(line)
	if !found {
		sendError(w, "Animal not found", http.StatusNotFound)
		return
	}

	view := AnimalView{
		Animal:     animal,
		Lactations: doc.LactationsFor(line),
	}
	if statement, found := doc.Statement(line); found {
		view.Statement = statement
	}
	sendSuccess(w, view)
}

// handleDelete godoc
//
//	@Summary		Delete a stored file
//	@Tags			datastreams
//	@Produce		json
//	@Param			id	path		string	true	"Datastream id"
//	@Success		200	{object}	map[string]string
//	@Failure		404	{object}	APIResponse
//	@Router			/datastreams/{id} [delete]
//	@Security		ApiKeyAuth
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	start := time.Now()
	err := s.archive.Delete(id)
	s.metrics.RecordArchiveOperation("delete", err == nil, time.Since(start))
	if err != nil {
		s.sendArchiveError(w, err)
		return
	}

	s.log.Info("Deleted datastream", zap.String("id", id))
	sendSuccess(w, map[string]string{"message": "Datastream deleted successfully"})
}

// document loads the document named by the id path parameter, writing the
// error response itself when it cannot
func (s *Server) document(w http.ResponseWriter, r *http.Request) (*datastream.Document, bool) {
	start := time.Now()
	doc, err := s.archive.Get(chi.URLParam(r, "id"))
	s.metrics.RecordArchiveOperation("get", err == nil, time.Since(start))
	if err != nil {
		s.sendArchiveError(w, err)
		return nil, false
	}
	return doc, true
}

func (s *Server) sendArchiveError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		sendError(w, "Datastream not found", http.StatusNotFound)
	case errors.Is(err, storage.ErrInvalidID):
		sendError(w, "Invalid datastream id", http.StatusBadRequest)
	default:
		s.log.Error("Archive operation failed", zap.Error(err))
		sendError(w, "Archive operation failed", http.StatusInternalServerError)
	}
}

// countingReader counts the bytes read through it and keeps the first read
// error other than io.EOF
type countingReader struct {
	r   io.Reader
	n   int64
	err error
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	if err != nil && !errors.Is(err, io.EOF) && c.err == nil {
		c.err = err
	}
	return n, err
}
