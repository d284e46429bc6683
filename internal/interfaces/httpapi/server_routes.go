package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerPublicCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/{eventID}", handler.GetEvent)
	mux.HandleFunc("GET /v1/events/{eventID}/entries", handler.ListEventEntries)
}

func registerAuthorizedRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	registerAuthorizedLeagueRoutes(mux, handler, verifier)
	registerAuthorizedDraftRoutes(mux, handler, verifier)
	registerAuthorizedResultRoutes(mux, handler, verifier)
}

func registerAuthorizedLeagueRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.CreateLeague)))
	mux.Handle("GET /v1/leagues", RequireAuth(verifier, http.HandlerFunc(handler.ListMyLeagues)))
	mux.Handle("POST /v1/leagues/join", RequireAuth(verifier, http.HandlerFunc(handler.JoinLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}", RequireAuth(verifier, http.HandlerFunc(handler.GetLeague)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/start", RequireAuth(verifier, http.HandlerFunc(handler.StartDraft)))
	mux.Handle("POST /v1/leagues/{leagueID}/lock", RequireAuth(verifier, http.HandlerFunc(handler.LockLeague)))
	mux.Handle("GET /v1/leagues/{leagueID}/events", RequireAuth(verifier, http.HandlerFunc(handler.ListLeagueEvents)))
}

func registerAuthorizedDraftRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("GET /v1/leagues/{leagueID}/draft", RequireAuth(verifier, http.HandlerFunc(handler.GetDraftState)))
	mux.Handle("POST /v1/leagues/{leagueID}/draft/picks", RequireAuth(verifier, http.HandlerFunc(handler.SubmitPick)))
	mux.Handle("GET /v1/leagues/{leagueID}/picks/me", RequireAuth(verifier, http.HandlerFunc(handler.ListMyPicks)))
}

func registerAuthorizedResultRoutes(mux *http.ServeMux, handler *Handler, verifier TokenVerifier) {
	mux.Handle("POST /v1/leagues/{leagueID}/events/{eventID}/results", RequireAuth(verifier, http.HandlerFunc(handler.SubmitResults)))
	mux.Handle("GET /v1/leagues/{leagueID}/events/{eventID}/results", RequireAuth(verifier, http.HandlerFunc(handler.ListResults)))
	mux.Handle("GET /v1/leagues/{leagueID}/leaderboard", RequireAuth(verifier, http.HandlerFunc(handler.GetLeaderboard)))
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/catalog", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.IngestCatalog)))
	mux.Handle("POST /v1/internal/leagues/{leagueID}/auto-assign", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunAutoAssign)))
}
