package strava

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/stridelog/stridelog/internal/config"
	"github.com/stridelog/stridelog/internal/rest"
	"github.com/stridelog/stridelog/pkg/athlete"
	log "github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// Endpoint is the Strava OAuth2 endpoint.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://www.strava.com/oauth/authorize",
	TokenURL: "https://www.strava.com/oauth/token",
}

type stravaAuthRedirect struct {
	RedirectUrl string `json:"redirectUrl"`
}

type StravaAuth struct {
	repo           Repository
	athleteService athlete.Service
	oauthConfig    *oauth2.Config
}

func NewStravaAuth(repo Repository, athleteService athlete.Service, cfg config.Application) *StravaAuth {
	oauthConfig := &oauth2.Config{
		ClientID:     cfg.Strava.ClientId,
		ClientSecret: cfg.Strava.ClientSecret,
		Endpoint:     Endpoint,
		RedirectURL:  cfg.Host + "/api/integrations/strava/auth/callback",
		Scopes:       []string{"read,activity:read_all"},
	}

	return &StravaAuth{repo: repo, athleteService: athleteService, oauthConfig: oauthConfig}
}

func (s *StravaAuth) OAuthLogin(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	currentAthlete, err := s.athleteService.GetCurrentAthlete(r.Context())
	if err != nil {
		log.Error("unable to retrieve current athlete: ", err)
		http.Error(w, "unable to retrieve current athlete", http.StatusInternalServerError)
		return
	}

	stateNonce := uuid.New().String()
	finalUrl := r.URL.Query().Get("finalUrl")

	if err := s.repo.PrepareAuth(r.Context(), currentAthlete.Id, stateNonce); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to handle Strava authentication",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	log.Tracef("Redirecting to Strava auth URL with nonce: %s", stateNonce)
	u := s.oauthConfig.AuthCodeURL(finalUrl+"|"+stateNonce, oauth2.AccessTypeOffline)

	w.WriteHeader(http.StatusOK)
	encodeErr := json.NewEncoder(w).Encode(stravaAuthRedirect{
		RedirectUrl: u,
	})
	if encodeErr != nil {
		http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
	}
}

func (s *StravaAuth) OAuthCallback(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	code := r.FormValue("code")
	state := r.FormValue("state")

	parts := strings.SplitN(state, "|", 2)
	if len(parts) != 2 {
		http.Error(w, "invalid state parameter", http.StatusBadRequest)
		return
	}
	finalUrl := parts[0]
	nonce := parts[1]

	token, err := s.oauthConfig.Exchange(context.Background(), code)
	if err != nil {
		err := fmt.Errorf("unable to exchange code for token: %v", err)
		log.Error(err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}

	if err := s.repo.StoreTokenForNonce(r.Context(), nonce, token); err != nil {
		log.Errorf("unable to store Strava auth token for nonce: %v", err)
		http.Redirect(w, r, finalUrl+"?success=false", http.StatusFound)
		return
	}
	log.Debug("Successfully stored Strava auth token for nonce: ", nonce)
	http.Redirect(w, r, finalUrl+"?success=true", http.StatusFound)
}

func (s *StravaAuth) OAuthLogout(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	athleteId, err := athlete.CurrentId(r.Context())
	if err != nil {
		log.Error("unable to retrieve current athlete: ", err)
		http.Error(w, "unable to retrieve current athlete", http.StatusInternalServerError)
		return
	}
	if err := s.repo.DeleteAuth(r.Context(), athleteId); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Failed to handle Strava authentication",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *StravaAuth) IsAuthenticated(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	athleteId, err := athlete.CurrentId(r.Context())
	if err != nil {
		log.Error("unable to retrieve current athlete: ", err)
		http.Error(w, "unable to retrieve current athlete", http.StatusInternalServerError)
		return
	}
	token, err := s.repo.GetToken(r.Context(), athleteId)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	response := struct {
		Authenticated bool `json:"authenticated"`
	}{Authenticated: token != nil}
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// getClient returns an authenticated HTTP client for the athlete, or nil when the
// athlete never authorized Strava.
func (s *StravaAuth) getClient(ctx context.Context, athleteId int) (*http.Client, error) {
	token, err := s.repo.GetToken(ctx, athleteId)
	if err != nil {
		log.Error(err)
		return nil, err
	}
	if token == nil {
		return nil, nil
	}
	return s.oauthConfig.Client(ctx, token), nil
}
