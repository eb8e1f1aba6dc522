package cmd

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/bep/debounce"
	"github.com/fsnotify/fsnotify"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/steelchords/chord"
	"github.com/jsphweid/steelchords/config"
	"github.com/jsphweid/steelchords/copedent"
	"github.com/jsphweid/steelchords/model"
	"github.com/jsphweid/steelchords/note"
	"github.com/jsphweid/steelchords/voicing"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const reloadDelay = 500 * time.Millisecond

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the voicing search over http",
	Long:  `Serves the voicing search over http`,
	Run: func(cmd *cobra.Command, args []string) {
		serve(loadConfig())
	},
}

type server struct {
	engine     atomic.Pointer[voicing.Engine]
	validate   *validator.Validate
	maxFret    int
	minDegrees int
}

func newServer(e *voicing.Engine, maxFret, minDegrees int) *server {
	s := &server{validate: validator.New(), maxFret: maxFret, minDegrees: minDegrees}
	s.engine.Store(e)
	return s
}

// NewRouter exposes the search api for e. maxFret applies when a request
// leaves it out.
func NewRouter(e *voicing.Engine, maxFret int) *mux.Router {
	return newServer(e, maxFret, 0).router()
}

func (s *server) router() *mux.Router {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/notes", s.handleNotes).Methods("GET")
	router.HandleFunc("/chords", s.handleChords).Methods("GET")
	router.HandleFunc("/combinations", s.handleCombinations).Methods("GET")
	router.HandleFunc("/search", s.handleSearch).Methods("POST")
	router.HandleFunc("/frequency/{note}", s.handleFrequency).Methods("GET")
	return router
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (s *server) handleNotes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, note.Names)
}

func (s *server) handleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Load().Templates().All())
}

func (s *server) handleCombinations(w http.ResponseWriter, r *http.Request) {
	e := s.engine.Load()
	combos := e.Combinations()
	res := model.CombinationsResponse{
		Copedent:     e.Copedent().Name,
		Count:        len(combos),
		Combinations: make([][]string, len(combos)),
	}
	for i, c := range combos {
		res.Combinations[i] = append([]string{}, c...)
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *server) handleSearch(w http.ResponseWriter, r *http.Request) {
	var input model.SearchRequestBody
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not decode request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(input); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	maxFret := s.maxFret
	if input.MaxFret != nil {
		maxFret = *input.MaxFret
	}

	voicings, err := s.engine.Load().FindVoicings(input.Root, input.ChordType, maxFret)
	if errors.Is(err, note.ErrInvalidNoteName) {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	} else if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, model.SearchResponse{
		ID:        uuid.New().String(),
		Root:      input.Root,
		ChordType: input.ChordType,
		Count:     len(voicings),
		Voicings:  voicings,
	})
}

func (s *server) handleFrequency(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["note"]
	freq, err := note.NameToFrequency(name)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, model.FrequencyResponse{Note: name, Frequency: freq})
}

// reload swaps in an engine built from the copedent at path. A bad file keeps
// the current one. Each reload reads the file into a fresh viper.
func (s *server) reload(path string) {
	c, err := copedent.Load(path)
	if err != nil {
		log.Printf("Keeping previous copedent: %v", err)
		return
	}
	s.engine.Store(voicing.New(c, chord.Default(), voicing.WithMinDegrees(s.minDegrees)))
	log.Printf("Loaded copedent %v", c.Name)
}

func (s *server) watch(path string) {
	v := viper.New()
	v.SetConfigFile(path)
	cobra.CheckErr(v.ReadInConfig())

	debounced := debounce.New(reloadDelay)
	v.OnConfigChange(func(e fsnotify.Event) {
		debounced(func() { s.reload(path) })
	})
	v.WatchConfig()
	log.Printf("Watching %v", path)
}

func serve(cfg *config.Config) {
	s := newServer(newEngine(cfg), cfg.Search.MaxFret, cfg.Search.MinDegrees)
	if cfg.Copedent.Path != "" && cfg.Copedent.Watch {
		s.watch(cfg.Copedent.Path)
	}

	handler := cors.New(cors.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(s.router())

	log.Printf("Listening on :%v", cfg.Server.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Server.Port, handler))
}
