package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"medconnect/internal/app/db"
	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/req"
	"medconnect/internal/pkg/resp"
)

// SocialPlatformInput is the body for creating or updating a social platform link.
type SocialPlatformInput struct {
	UserID   int64  `json:"userId" validate:"required_without=ID"`
	Platform string `json:"platform" validate:"required,max=255"`
	URL      string `json:"url" validate:"required,url,max=2048"`
	ID       int64  `json:"-"`
}

// MedicalComplicationInput is the body for creating or updating a medical complication.
type MedicalComplicationInput struct {
	UserID       int64  `json:"userId" validate:"required_without=ID"`
	Complication string `json:"complication" validate:"required,max=255"`
	DiagnosedAt  string `json:"diagnosedAt" validate:"omitempty,datetime=2006-01-02"`
	ID           int64  `json:"-"`
}

// OrganizationInput is the body for creating or updating an organization membership.
type OrganizationInput struct {
	UserID           int64  `json:"userId" validate:"required_without=ID"`
	OrganizationName string `json:"organizationName" validate:"required,max=255"`
	Role             string `json:"role" validate:"max=255"`
	JoinedAt         string `json:"joinedAt" validate:"omitempty,datetime=2006-01-02"`
	ID               int64  `json:"-"`
}

// parseDate turns a YYYY-MM-DD string into a nullable date. Empty means NULL.
func parseDate(value string) (pgtype.Date, *errs.CustomError) {
	value = strings.TrimSpace(value)
	if value == "" {
		return pgtype.Date{}, nil
	}
	parsed, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return pgtype.Date{}, errs.Wrap(errs.ErrInvalidParams, err)
	}
	return pgtype.Date{Time: parsed, Valid: true}, nil
}

// bindRecord decodes the body and, for updates, binds the row id from the path first so
// required_without=ID lets the owner id be omitted.
func bindRecord(r *http.Request, dst any, id *int64) *errs.CustomError {
	if id != nil {
		rowID, customErr := req.PathID(r, "id")
		if customErr != nil {
			return customErr
		}
		*id = rowID
	}
	return req.BindJSON(r, dst)
}

func respondList[T any](w http.ResponseWriter, r *http.Request, rows []T, err error, what string) {
	if err != nil {
		logx.Error(err, "failed to list records", "kind", what)
		resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
		return
	}
	if rows == nil {
		rows = []T{}
	}
	resp.RespondSuccess(w, r, rows)
}

func respondWrite[T any](w http.ResponseWriter, r *http.Request, status int, row T, err error, what string) {
	if err != nil {
		switch {
		case db.IsNoRows(err):
			resp.RespondError(w, r, errs.NewError(errs.ErrResourceNotFound))
		case db.IsForeignKeyViolation(err):
			resp.RespondError(w, r, errs.NewError(errs.ErrUserNotFound))
		default:
			logx.Error(err, "failed to write record", "kind", what)
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
		}
		return
	}
	resp.RespondSuccessWithStatus(w, r, status, row)
}

// handleDelete removes the row addressed by {id}; zero affected rows is a 404.
func handleDelete(deleteFn func(r *http.Request, id int64) (int64, error), what string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, customErr := req.PathID(r, "id")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		affected, err := deleteFn(r, id)
		if err != nil {
			logx.Error(err, "failed to delete record", "kind", what, "id", id)
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}
		if affected == 0 {
			resp.RespondError(w, r, errs.NewError(errs.ErrResourceNotFound))
			return
		}

		resp.RespondSuccess(w, r, map[string]any{"id": id})
	}
}

// --- Social platforms ---

// HandleListSocialPlatforms lists the links of the user addressed by {id}.
func HandleListSocialPlatforms(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, customErr := req.PathID(r, "id")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		rows, err := deps.DB.ListSocialPlatformsByUser(r.Context(), userID)
		respondList(w, r, rows, err, "social_platform")
	}
}

// HandleCreateSocialPlatform adds a link for a user.
func HandleCreateSocialPlatform(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SocialPlatformInput
		if customErr := bindRecord(r, &input, nil); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		row, err := deps.DB.CreateSocialPlatform(r.Context(), dbc.CreateSocialPlatformParams{
			UserID:   input.UserID,
			Platform: input.Platform,
			Url:      input.URL,
		})
		respondWrite(w, r, http.StatusCreated, row, err, "social_platform")
	}
}

// HandleUpdateSocialPlatform replaces the link addressed by {id}.
func HandleUpdateSocialPlatform(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input SocialPlatformInput
		if customErr := bindRecord(r, &input, &input.ID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		row, err := deps.DB.UpdateSocialPlatform(r.Context(), dbc.UpdateSocialPlatformParams{
			ID:       input.ID,
			Platform: input.Platform,
			Url:      input.URL,
		})
		respondWrite(w, r, http.StatusOK, row, err, "social_platform")
	}
}

// HandleDeleteSocialPlatform removes the link addressed by {id}.
func HandleDeleteSocialPlatform(deps *AppDeps) http.HandlerFunc {
	return handleDelete(func(r *http.Request, id int64) (int64, error) {
		return deps.DB.DeleteSocialPlatform(r.Context(), id)
	}, "social_platform")
}

// --- Medical complications ---

// HandleListMedicalComplications lists the complications of the user addressed by {id}.
func HandleListMedicalComplications(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, customErr := req.PathID(r, "id")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		rows, err := deps.DB.ListMedicalComplicationsByUser(r.Context(), userID)
		respondList(w, r, rows, err, "medical_complication")
	}
}

// HandleCreateMedicalComplication records a diagnosis for a user.
func HandleCreateMedicalComplication(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input MedicalComplicationInput
		if customErr := bindRecord(r, &input, nil); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		diagnosedAt, customErr := parseDate(input.DiagnosedAt)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		row, err := deps.DB.CreateMedicalComplication(r.Context(), dbc.CreateMedicalComplicationParams{
			UserID:       input.UserID,
			Complication: input.Complication,
			DiagnosedAt:  diagnosedAt,
		})
		respondWrite(w, r, http.StatusCreated, row, err, "medical_complication")
	}
}

// HandleUpdateMedicalComplication replaces the diagnosis addressed by {id}.
func HandleUpdateMedicalComplication(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input MedicalComplicationInput
		if customErr := bindRecord(r, &input, &input.ID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		diagnosedAt, customErr := parseDate(input.DiagnosedAt)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		row, err := deps.DB.UpdateMedicalComplication(r.Context(), dbc.UpdateMedicalComplicationParams{
			ID:           input.ID,
			Complication: input.Complication,
			DiagnosedAt:  diagnosedAt,
		})
		respondWrite(w, r, http.StatusOK, row, err, "medical_complication")
	}
}

// HandleDeleteMedicalComplication removes the diagnosis addressed by {id}.
func HandleDeleteMedicalComplication(deps *AppDeps) http.HandlerFunc {
	return handleDelete(func(r *http.Request, id int64) (int64, error) {
		return deps.DB.DeleteMedicalComplication(r.Context(), id)
	}, "medical_complication")
}

// --- Organizations ---

// HandleListOrganizations lists the memberships of the user addressed by {id}.
func HandleListOrganizations(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, customErr := req.PathID(r, "id")
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		rows, err := deps.DB.ListOrganizationsByUser(r.Context(), userID)
		respondList(w, r, rows, err, "organization")
	}
}

// HandleCreateOrganization records a membership for a user.
func HandleCreateOrganization(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input OrganizationInput
		if customErr := bindRecord(r, &input, nil); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		joinedAt, customErr := parseDate(input.JoinedAt)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		row, err := deps.DB.CreateOrganization(r.Context(), dbc.CreateOrganizationParams{
			UserID:           input.UserID,
			OrganizationName: input.OrganizationName,
			Role:             input.Role,
			JoinedAt:         joinedAt,
		})
		respondWrite(w, r, http.StatusCreated, row, err, "organization")
	}
}

// HandleUpdateOrganization replaces the membership addressed by {id}.
func HandleUpdateOrganization(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input OrganizationInput
		if customErr := bindRecord(r, &input, &input.ID); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		joinedAt, customErr := parseDate(input.JoinedAt)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}
		row, err := deps.DB.UpdateOrganization(r.Context(), dbc.UpdateOrganizationParams{
			ID:               input.ID,
			OrganizationName: input.OrganizationName,
			Role:             input.Role,
			JoinedAt:         joinedAt,
		})
		respondWrite(w, r, http.StatusOK, row, err, "organization")
	}
}

// HandleDeleteOrganization removes the membership addressed by {id}.
func HandleDeleteOrganization(deps *AppDeps) http.HandlerFunc {
	return handleDelete(func(r *http.Request, id int64) (int64, error) {
		return deps.DB.DeleteOrganization(r.Context(), id)
	}, "organization")
}
