/*
Package handler provides the HTTP handlers and routing setup for the hospital backend.

This file defines the main Router, applying middleware like logging, CORS and IP-based rate
limiting before delegating requests to the REST, appointment room and WebSocket handlers.
*/
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"
	"github.com/rs/cors"
	"golang.org/x/time/rate"

	"medconnect/internal/pkg/auth/jwt"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/limiter"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/resp"
)

const (
	CreateRoomRate  = 0.5
	CreateRoomBurst = 10
	JoinRate        = 1
	JoinBurst       = 20
	AuthRate        = 0.2
	AuthBurst       = 10
	AssistRate      = 0.1
	AssistBurst     = 5

	healthTimeout = 2 * time.Second
)

// Router sets up the main HTTP routing table for the application. Limiter cleanup goroutines
// stop when ctx is done.
func Router(ctx context.Context, deps *AppDeps) http.Handler {
	createLimiter := limiter.NewIPRateLimiter(ctx, "appointment_create", rate.Limit(CreateRoomRate), CreateRoomBurst)
	joinLimiter := limiter.NewIPRateLimiter(ctx, "ws_join", rate.Limit(JoinRate), JoinBurst)
	authLimiter := limiter.NewIPRateLimiter(ctx, "auth", rate.Limit(AuthRate), AuthBurst)
	assistLimiter := limiter.NewIPRateLimiter(ctx, "assist", rate.Limit(AssistRate), AssistBurst)

	r := chi.NewRouter()

	allowedOrigins := make(map[string]struct{})
	for _, origin := range deps.Config.AllowedOrigins {
		allowedOrigins[origin] = struct{}{}
	}

	wsUpgrader := websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if deps.Config.IsDevelopment() {
				return true
			}

			origin := r.Header.Get("Origin")
			if origin == "" || origin == "http://"+r.Host || origin == "https://"+r.Host {
				return true
			}
			if _, ok := allowedOrigins[origin]; ok {
				return true
			}

			logx.Warn("WebSocket connection rejected: Origin not allowed.", "origin", origin)
			return false
		},
	}

	corsAllowedOrigins := []string{}
	if deps.Config.IsDevelopment() {
		corsAllowedOrigins = []string{"*"}
	} else if len(deps.Config.AllowedOrigins) > 0 {
		corsAllowedOrigins = deps.Config.AllowedOrigins
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   corsAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-PoW-Token"},
		ExposedHeaders:   []string{},
		AllowCredentials: true,
		MaxAge:           300,
	})
	r.Use(c.Handler)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logx.RequestLogger())
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
		defer cancel()

		stats, err := deps.Relay.Snapshot(ctx)
		if err != nil {
			resp.RespondError(w, r, errs.Wrap(errs.ErrUnknown, err))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{
			"status":  "ok",
			"service": "medconnect",
			"relay":   stats,
		})
	})

	// Appointment rooms and signaling.
	r.With(createLimiter.Middleware).Get(AppointmentPath, HandleCreateAppointmentRoom(nil))
	r.Get(AppointmentPath+"/{roomId}", HandleAppointmentRoom(deps.Config.AppShellPath))
	r.Get("/ws/appointment", HandleWebSocket(deps.Relay, wsUpgrader, joinLimiter))

	// Accounts.
	r.Group(func(auth chi.Router) {
		auth.Use(authLimiter.Middleware)
		auth.Post("/register/user", HandleRegisterUser(deps))
		auth.Post("/register/doctor", HandleRegisterDoctor(deps))
		auth.Post("/login", HandleLogin(deps))
	})
	r.Get("/uploads/*", HandleServeUpload(deps.StorageService))

	// Directory and scheduling.
	r.Get("/doctors", HandleListDoctors(deps))
	r.Get("/departments", HandleListDepartments(deps))
	r.Get("/hospitals", HandleListHospitals(deps))
	r.Route("/appointments", func(appointments chi.Router) {
		appointments.Get("/", HandleListAppointments(deps))
		appointments.Post("/", HandleCreateAppointment(deps))
		appointments.Put("/{id}", HandleUpdateAppointment(deps))
		appointments.Delete("/{id}", HandleDeleteAppointment(deps))
	})

	// Clinical assistants.
	r.Group(func(assist chi.Router) {
		assist.Use(assistLimiter.Middleware)
		assist.Post("/detect-and-translate", HandleDetectAndTranslate(deps))
		assist.With(deps.Pow.Middleware).Post("/generate-prescription", HandleGeneratePrescription(deps))
	})

	r.Route("/api", func(api chi.Router) {
		api.Use(jwt.IdentityExtractorMiddleware(deps.Config.JWTSecret))

		api.Get("/auth/profile", HandleGetProfile(deps))
		api.Get("/user/{id}", HandleGetUser(deps))
		api.Get("/doctors", HandleListDoctorsByDepartment(deps))

		api.Route("/pow", func(pow chi.Router) {
			pow.Get("/challenge", HandlePowChallenge(deps.Pow))
			pow.Post("/verify", HandlePowVerify(deps.Pow))
		})

		api.Route("/social-platforms", func(records chi.Router) {
			records.Post("/", HandleCreateSocialPlatform(deps))
			records.Get("/{id}", HandleListSocialPlatforms(deps))
			records.Put("/{id}", HandleUpdateSocialPlatform(deps))
			records.Delete("/{id}", HandleDeleteSocialPlatform(deps))
		})

		api.Route("/medical-complications", func(records chi.Router) {
			records.Post("/", HandleCreateMedicalComplication(deps))
			records.Get("/{id}", HandleListMedicalComplications(deps))
			records.Put("/{id}", HandleUpdateMedicalComplication(deps))
			records.Delete("/{id}", HandleDeleteMedicalComplication(deps))
		})

		api.Route("/organizations", func(records chi.Router) {
			records.Post("/", HandleCreateOrganization(deps))
			records.Get("/{id}", HandleListOrganizations(deps))
			records.Put("/{id}", HandleUpdateOrganization(deps))
			records.Delete("/{id}", HandleDeleteOrganization(deps))
		})
	})

	return r
}
