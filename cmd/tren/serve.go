package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/bostanberkay/TREN/classify"
	"github.com/bostanberkay/TREN/pipeline"
)

const defaultAddr = ":8080"

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the annotation pipeline as a JSON API",
	Long: `Serve exposes the pipeline over HTTP:

  POST /api/annotate   {"text":"..."}   annotation output plus structured sentences
  POST /api/classify   {"token":"..."}  single-token label
  GET  /api/config                      active configuration
  GET  /api/health

The listen address comes from --addr, then the TREN_ADDR environment
variable (a .env file is honored), then ` + defaultAddr + `.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	modelFlags(serveCmd)
	serveCmd.Flags().String("addr", "", "listen address (default TREN_ADDR or "+defaultAddr+")")
}

func runServe(cmd *cobra.Command, args []string) error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}

	addr, err := cmd.Flags().GetString("addr")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = os.Getenv("TREN_ADDR")
	}
	if addr == "" {
		addr = defaultAddr
	}

	m, err := buildModel(cmd)
	if err != nil {
		return err
	}
	clf := classify.New(m.dicts, m.id, classify.Params{
		ENMin:       m.cfg.ENMin,
		TRMin:       m.cfg.TRMin,
		MixedStrict: m.cfg.MixedStrict,
	})

	mux := http.NewServeMux()
	mux.HandleFunc("/api/annotate", handleAnnotate(m.ann))
	mux.HandleFunc("/api/classify", handleClassify(clf))
	mux.HandleFunc("/api/config", handleConfig(m.cfg))
	mux.HandleFunc("/api/health", handleHealth)

	handler := cors.Default().Handler(logRequests(mux))

	if !quietFlag(cmd) {
		log.Printf("tren %s listening on %s", Version, addr)
	}
	return http.ListenAndServe(addr, handler)
}

// ---- JSON response types ------------------------------------------------

type itemJSON struct {
	Token  string `json:"token"`
	Label  string `json:"label"`
	Stem   string `json:"stem,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

type sentenceJSON struct {
	ID     int        `json:"id"`
	Items  []itemJSON `json:"items"`
	Matrix string     `json:"matrix"`
	Embed  string     `json:"embed"`
}

type annotateResponse struct {
	Output    string         `json:"output"`
	Sentences []sentenceJSON `json:"sentences"`
}

type classifyResponse struct {
	Token  string `json:"token"`
	Label  string `json:"label"`
	Stem   string `json:"stem,omitempty"`
	Suffix string `json:"suffix,omitempty"`
}

// configResponse mirrors the tren.toml sections.
type configResponse struct {
	Features struct {
		PerItem    bool `json:"per_item"`
		Matrix     bool `json:"matrix"`
		Embedded   bool `json:"embedded"`
		SentenceID bool `json:"sentence_id"`
	} `json:"features"`
	NER struct {
		Enabled bool `json:"enabled"`
	} `json:"ner"`
	LID struct {
		ENMin float64 `json:"en_min"`
		TRMin float64 `json:"tr_min"`
	} `json:"lid"`
	Mixed struct {
		Strict     bool    `json:"strict"`
		EmitSuffix bool    `json:"emit_suffix"`
		TRWeight   float64 `json:"tr_weight"`
		ENWeight   float64 `json:"en_weight"`
	} `json:"mixed"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func toConfigJSON(cfg pipeline.Config) configResponse {
	var out configResponse
	out.Features.PerItem = cfg.PerItem
	out.Features.Matrix = cfg.Matrix
	out.Features.Embedded = cfg.Embedded
	out.Features.SentenceID = cfg.SentenceID
	out.NER.Enabled = cfg.NER
	out.LID.ENMin = cfg.ENMin
	out.LID.TRMin = cfg.TRMin
	out.Mixed.Strict = cfg.MixedStrict
	out.Mixed.EmitSuffix = cfg.EmitMixedSuffix
	out.Mixed.TRWeight = cfg.MixedTRWeight
	out.Mixed.ENWeight = cfg.MixedENWeight
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// logRequests tags every request with an ID, echoed in the X-Request-ID
// header, and logs method, path, status, and duration.
func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		log.Printf("[%s] %s %s %d %s", id, r.Method, r.URL.Path, rec.status, time.Since(start).Round(time.Microsecond))
	})
}

// statusRecorder captures the status code for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// ---- handlers -----------------------------------------------------------

func handleAnnotate(ann *pipeline.Annotator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		output, err := ann.Annotate(body.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		sentences, err := ann.Sentences(body.Text)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}

		out := annotateResponse{Output: output, Sentences: make([]sentenceJSON, 0, len(sentences))}
		for _, s := range sentences {
			items := make([]itemJSON, 0, len(s.Items))
			for _, it := range s.Items {
				items = append(items, itemJSON{Token: it.Token, Label: it.Label.String(), Stem: it.Stem, Suffix: it.Suffix})
			}
			out.Sentences = append(out.Sentences, sentenceJSON{
				ID:     s.Index,
				Items:  items,
				Matrix: s.Decision.Matrix.String(),
				Embed:  s.Decision.EmbedString(),
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func handleClassify(clf *classify.Classifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Token string `json:"token"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Token == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'token' field")
			return
		}

		res := clf.Classify(body.Token, nil)
		writeJSON(w, http.StatusOK, classifyResponse{
			Token:  body.Token,
			Label:  res.Label.String(),
			Stem:   res.Stem,
			Suffix: res.Suffix,
		})
	}
}

func handleConfig(cfg pipeline.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		writeJSON(w, http.StatusOK, toConfigJSON(cfg))
	}
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "GET required")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
