package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"medconnect/internal/app/db"
	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/app/storage"
	"medconnect/internal/app/user"
	"medconnect/internal/pkg/auth/jwt"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/req"
	"medconnect/internal/pkg/resp"
)

// ProfilePicField is the multipart field holding an optional profile picture.
const ProfilePicField = "profilePic"

// RegisterUserInput is the form of POST /register/user.
type RegisterUserInput struct {
	FirstName   string `validate:"required,max=255"`
	LastName    string `validate:"required,max=255"`
	Email       string `validate:"required,email,max=255"`
	Address     string `validate:"max=255"`
	CountryCode string `validate:"max=16"`
	NhsNumber   string `validate:"max=32"`
	Phone       string `validate:"required,max=32"`
	BloodGroup  string `validate:"max=8"`
	Gender      string
	Password    string `validate:"required,min=6,max=72"`
}

// RegisterDoctorInput is the form of POST /register/doctor.
type RegisterDoctorInput struct {
	FirstName   string `validate:"required,max=255"`
	LastName    string `validate:"required,max=255"`
	Email       string `validate:"required,email,max=255"`
	Address     string `validate:"max=255"`
	CountryCode string `validate:"max=16"`
	NhsNumber   string `validate:"max=32"`
	Phone       string `validate:"max=32"`
	Department  string `validate:"required,max=255"`
	Role        string `validate:"max=255"`
	Hospital    string `validate:"max=255"`
	Gender      string `validate:"max=16"`
	Password    string `validate:"required,min=6,max=72"`
}

// LoginInput is the body of POST /login.
type LoginInput struct {
	Email    string `json:"email" validate:"required,max=255"`
	Password string `json:"password" validate:"required"`
}

func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.FormValue(key))
}

// HandleRegisterUser creates a patient account from a multipart form.
func HandleRegisterUser(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input := RegisterUserInput{
			FirstName:   formValue(r, "firstName"),
			LastName:    formValue(r, "lastName"),
			Email:       formValue(r, "email"),
			Address:     formValue(r, "address"),
			CountryCode: formValue(r, "countryCode"),
			NhsNumber:   formValue(r, "nhsNumber"),
			Phone:       formValue(r, "phone"),
			BloodGroup:  formValue(r, "bloodGroup"),
			Gender:      formValue(r, "gender"),
			Password:    r.FormValue("password"),
		}

		if !user.ValidGender(input.Gender) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidGender, strings.Join(user.Genders, ", ")))
			return
		}

		if customErr := req.Validate(&input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		hashed, err := user.HashPassword(input.Password)
		if err != nil {
			resp.RespondError(w, r, errs.Wrap(errs.ErrUnknown, err))
			return
		}

		picKey, customErr := storeProfilePic(r, deps.StorageService)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		created, err := deps.DB.CreateUser(r.Context(), dbc.CreateUserParams{
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			Address:      input.Address,
			CountryCode:  input.CountryCode,
			NhsNumber:    input.NhsNumber,
			Phone:        input.Phone,
			BloodGroup:   input.BloodGroup,
			Gender:       input.Gender,
			ProfilePic:   picKey,
			PasswordHash: hashed,
		})
		if err != nil {
			discardProfilePic(r.Context(), deps.StorageService, picKey)
			respondCreateAccountError(w, r, err, input.Email)
			return
		}

		logx.Info("Patient registered", "user_id", created.ID)
		resp.RespondSuccess(w, r, map[string]any{
			"user": user.NewPatient(created),
		})
	}
}

// HandleRegisterDoctor creates a doctor account from a multipart form.
func HandleRegisterDoctor(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if customErr := req.SetupMultipart(w, r); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		input := RegisterDoctorInput{
			FirstName:   formValue(r, "firstName"),
			LastName:    formValue(r, "lastName"),
			Email:       formValue(r, "email"),
			Address:     formValue(r, "address"),
			CountryCode: formValue(r, "countryCode"),
			NhsNumber:   formValue(r, "nhsNumber"),
			Phone:       formValue(r, "phone"),
			Department:  formValue(r, "department"),
			Role:        formValue(r, "role"),
			Hospital:    formValue(r, "hospital"),
			Gender:      formValue(r, "gender"),
			Password:    r.FormValue("password"),
		}

		if input.Gender != "" && !user.ValidGender(input.Gender) {
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidGender, strings.Join(user.Genders, ", ")))
			return
		}

		if customErr := req.Validate(&input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		hashed, err := user.HashPassword(input.Password)
		if err != nil {
			resp.RespondError(w, r, errs.Wrap(errs.ErrUnknown, err))
			return
		}

		picKey, customErr := storeProfilePic(r, deps.StorageService)
		if customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		created, err := deps.DB.CreateDoctor(r.Context(), dbc.CreateDoctorParams{
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Email:        input.Email,
			Address:      input.Address,
			CountryCode:  input.CountryCode,
			NhsNumber:    input.NhsNumber,
			Phone:        input.Phone,
			Department:   input.Department,
			Role:         input.Role,
			Hospital:     input.Hospital,
			Gender:       input.Gender,
			ProfilePic:   picKey,
			PasswordHash: hashed,
		})
		if err != nil {
			discardProfilePic(r.Context(), deps.StorageService, picKey)
			respondCreateAccountError(w, r, err, input.Email)
			return
		}

		logx.Info("Doctor registered", "doctor_id", created.ID)
		resp.RespondSuccess(w, r, map[string]any{
			"doctor": user.NewDoctor(created),
		})
	}
}

// storeProfilePic saves the optional picture field. A missing field yields an invalid Text.
func storeProfilePic(r *http.Request, svc storage.StorageService) (pgtype.Text, *errs.CustomError) {
	file, header, err := r.FormFile(ProfilePicField)
	if errors.Is(err, http.ErrMissingFile) {
		return pgtype.Text{}, nil
	}
	if err != nil {
		return pgtype.Text{}, errs.Wrap(errs.ErrFormParseFailed, err)
	}
	defer file.Close()

	key, customErr := storage.StoreImage(r.Context(), svc, storage.ProfileImagePrefix, file, header.Size)
	if customErr != nil {
		return pgtype.Text{}, customErr
	}

	return pgtype.Text{String: key, Valid: true}, nil
}

func discardProfilePic(ctx context.Context, svc storage.StorageService, key pgtype.Text) {
	if !key.Valid {
		return
	}
	if err := svc.Delete(context.WithoutCancel(ctx), key.String); err != nil {
		logx.Error(err, "failed to remove orphaned profile picture", "key", key.String)
	}
}

func respondCreateAccountError(w http.ResponseWriter, r *http.Request, err error, email string) {
	if db.IsUniqueViolation(err) {
		logx.Warn("registration conflict: email already exists", "email", email)
		resp.RespondError(w, r, errs.NewError(errs.ErrUserAlreadyExists))
		return
	}

	logx.Error(err, "failed to create account in database")
	resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
}

// HandleLogin checks the credentials against patients first, then doctors, and issues a token.
func HandleLogin(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input LoginInput
		if customErr := req.BindJSON(r, &input); customErr != nil {
			resp.RespondError(w, r, customErr)
			return
		}

		email := strings.TrimSpace(input.Email)

		patient, err := deps.DB.GetUserByEmail(r.Context(), email)
		switch {
		case err == nil:
			if err := user.CheckPassword(patient.PasswordHash, input.Password); err != nil {
				logx.Warn("login: password mismatch", "role", jwt.RolePatient)
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
				return
			}
			respondWithToken(w, r, deps, &jwt.Payload{
				ID:    strconv.FormatInt(patient.ID, 10),
				Role:  jwt.RolePatient,
				Email: patient.Email,
			}, "user", user.NewPatient(patient))
			return
		case !db.IsNoRows(err):
			logx.Error(err, "login: user lookup failed")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}

		doctor, err := deps.DB.GetDoctorByEmail(r.Context(), email)
		if err != nil {
			if db.IsNoRows(err) {
				resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
				return
			}
			logx.Error(err, "login: doctor lookup failed")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}

		if err := user.CheckPassword(doctor.PasswordHash, input.Password); err != nil {
			logx.Warn("login: password mismatch", "role", jwt.RoleDoctor)
			resp.RespondError(w, r, errs.NewError(errs.ErrInvalidCredentials))
			return
		}

		respondWithToken(w, r, deps, &jwt.Payload{
			ID:    strconv.FormatInt(doctor.ID, 10),
			Role:  jwt.RoleDoctor,
			Email: doctor.Email,
		}, "doctor", user.NewDoctor(doctor))
	}
}

func respondWithToken(w http.ResponseWriter, r *http.Request, deps *AppDeps, payload *jwt.Payload, key string, account any) {
	token, err := jwt.GenerateToken(payload, deps.Config.JWTSecret, jwt.IdentityExpiration)
	if err != nil {
		logx.Error(err, "login: jwt generation failed")
		resp.RespondError(w, r, errs.Wrap(errs.ErrUnknown, err))
		return
	}

	resp.RespondSuccess(w, r, map[string]any{
		"token": token,
		"role":  payload.Role,
		key:     account,
	})
}

// HandleGetProfile returns the account behind the bearer token.
func HandleGetProfile(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		identity := jwt.GetPayloadFromContext(r)
		if identity == nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		id, err := strconv.ParseInt(identity.ID, 10, 64)
		if err != nil {
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
			return
		}

		switch identity.Role {
		case jwt.RolePatient:
			patient, err := deps.DB.GetUserByID(r.Context(), id)
			if err != nil {
				respondLookupError(w, r, err, errs.ErrUnauthorized)
				return
			}
			resp.RespondSuccess(w, r, map[string]any{"role": identity.Role, "user": user.NewPatient(patient)})
		case jwt.RoleDoctor:
			doctor, err := deps.DB.GetDoctorByID(r.Context(), id)
			if err != nil {
				respondLookupError(w, r, err, errs.ErrUnauthorized)
				return
			}
			resp.RespondSuccess(w, r, map[string]any{"role": identity.Role, "doctor": user.NewDoctor(doctor)})
		default:
			resp.RespondError(w, r, errs.NewError(errs.ErrUnauthorized))
		}
	}
}

// respondLookupError answers notFoundCode for a missing row and ErrDatabase otherwise.
func respondLookupError(w http.ResponseWriter, r *http.Request, err error, notFoundCode int) {
	if db.IsNoRows(err) {
		resp.RespondError(w, r, errs.NewError(notFoundCode))
		return
	}
	logx.Error(err, "database lookup failed")
	resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
}
