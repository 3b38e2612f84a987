package main

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-inputmask/components/countries"
	"github.com/goliatone/go-inputmask/pkg/maskconfig"
)

func init() {
	serveCmd.RunE = runServe
	flags := serveCmd.Flags()
	flags.StringVar(&serveCmd.addr, "addr", ":8080", "Listen address")
	flags.StringVar(&serveCmd.base, "base", "/", "Base path of every route")
	flags.BoolVar(&serveCmd.watch, "watch", false, "Reload --masks when its documents change (directories only)")
	rootCmd.AddCommand(&serveCmd.Command)
}

var serveCmd = struct {
	cobra.Command
	addr  string
	base  string
	watch bool
}{
	Command: cobra.Command{
		Use:   "serve",
		Short: "Serve country search and mask formatting over HTTP",
		Long: `Routes, relative to --base:
  /api/countries  country search (q, limit) or phone resolution (text)
  /api/masks      definitions of the loaded mask set
  /api/format     format text through a named mask (mask, text, caret)`,
	},
}

// setSource returns the mask set to serve, or nil while none is loaded.
type setSource func() *maskconfig.Set

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logger()

	var current setSource
	errc := make(chan error, 1)
	if serveCmd.watch && rootCmd.masks != "" {
		w := maskconfig.NewWatcher(rootCmd.masks,
			maskconfig.WithLogger(log),
			maskconfig.WithOnError(func(err error) {
				log.Error("serve: masks not reloaded", "error", err)
			}),
		)
		go func() { errc <- w.Run(ctx) }()
		current = w.Current
	} else {
		set, err := loadSet()
		if err != nil {
			return err
		}
		current = func() *maskconfig.Set { return set }
	}

	mux := http.NewServeMux()
	lookup, err := countries.New()
	if err != nil {
		return err
	}
	lookup.Mount(mux, serveCmd.base)
	mux.Handle(countries.JoinPath(serveCmd.base, "/api/masks"), masksHandler(current))
	mux.Handle(countries.JoinPath(serveCmd.base, "/api/format"), formatHandler(current))

	srv := &http.Server{
		Addr:              serveCmd.addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("serve: listening", "addr", serveCmd.addr, "base", serveCmd.base)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-errc:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("serve: stopped")
	return runErr
}

type maskInfo struct {
	Name        string `json:"name"`
	Kind        string `json:"kind"`
	Format      string `json:"format,omitempty"`
	Placeholder string `json:"placeholder"`
	Hint        string `json:"hint,omitempty"`
	RightToLeft bool   `json:"rtl,omitempty"`
}

func masksHandler(current setSource) http.Handler {
	return getOnly(func(w http.ResponseWriter, r *http.Request) {
		set := current()
		if set == nil {
			writeError(w, http.StatusServiceUnavailable, "masks not loaded")
			return
		}
		defs := set.Definitions()
		out := make([]maskInfo, 0, len(defs))
		for _, def := range defs {
			info := maskInfo{
				Name:        def.Name,
				Kind:        string(def.Kind()),
				Format:      def.Format,
				Hint:        def.Hint,
				RightToLeft: def.RightToLeft,
			}
			if sel, err := set.Selector(def.Name); err == nil {
				info.Placeholder = sel.Primary().Placeholder()
			}
			out = append(out, info)
		}
		writeJSON(w, http.StatusOK, map[string]any{"data": out})
	})
}

func formatHandler(current setSource) http.Handler {
	return getOnly(func(w http.ResponseWriter, r *http.Request) {
		set := current()
		if set == nil {
			writeError(w, http.StatusServiceUnavailable, "masks not loaded")
			return
		}
		q := r.URL.Query()
		name := q.Get("mask")
		def, err := set.Get(name)
		if err != nil {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		caret := -1
		if raw := q.Get("caret"); raw != "" {
			caret, err = strconv.Atoi(raw)
			if err != nil || caret < 0 {
				writeError(w, http.StatusBadRequest, "caret must be a non-negative integer")
				return
			}
		}

		sel, err := set.Selector(name)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		text := q.Get("text")
		state, err := format(sel, text, caret, true, def.RightToLeft)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		writeJSON(w, http.StatusOK, newRecord(text, state))
	})
}

func getOnly(fn http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.Header().Set("Allow", http.MethodGet)
			writeError(w, http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
			return
		}
		fn(w, r)
	})
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}
