package handler

import (
	"net/http"
	"strings"

	"github.com/samber/lo"

	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/app/user"
	"medconnect/internal/pkg/errs"
	"medconnect/internal/pkg/logx"
	"medconnect/internal/pkg/resp"
)

// DoctorListing is a row of the public doctor directory.
type DoctorListing struct {
	ID         int64  `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Specialty  string `json:"specialty"`
	Hospital   string `json:"hospital"`
	Role       string `json:"role"`
	Gender     string `json:"gender"`
	ProfilePic string `json:"profilePic,omitempty"`
}

func newDoctorListing(row dbc.ListDoctorsRow, _ int) DoctorListing {
	return DoctorListing{
		ID:         row.ID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
		Specialty:  row.Specialty,
		Hospital:   row.Hospital,
		Role:       row.Role,
		Gender:     row.Gender,
		ProfilePic: user.PictureURL(row.ProfilePic.String),
	}
}

// GroupDoctorsByDepartment maps each department to the full names of its doctors.
func GroupDoctorsByDepartment(rows []dbc.ListDoctorsRow) map[string][]string {
	grouped := lo.GroupBy(rows, func(row dbc.ListDoctorsRow) string {
		return row.Specialty
	})
	return lo.MapValues(grouped, func(members []dbc.ListDoctorsRow, _ string) []string {
		return lo.Map(members, func(row dbc.ListDoctorsRow, _ int) string {
			return strings.TrimSpace(row.FirstName + " " + row.LastName)
		})
	})
}

// HandleListDoctors returns every doctor with the department shown as specialty.
func HandleListDoctors(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := deps.DB.ListDoctors(r.Context())
		if err != nil {
			logx.Error(err, "failed to fetch doctors")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}
		resp.RespondSuccess(w, r, lo.Map(rows, newDoctorListing))
	}
}

// HandleListDoctorsByDepartment returns doctor names grouped by department.
func HandleListDoctorsByDepartment(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := deps.DB.ListDoctors(r.Context())
		if err != nil {
			logx.Error(err, "failed to fetch doctors")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}
		resp.RespondSuccess(w, r, GroupDoctorsByDepartment(rows))
	}
}

// HandleListDepartments returns the distinct departments that have at least one doctor.
func HandleListDepartments(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		departments, err := deps.DB.ListDepartments(r.Context())
		if err != nil {
			logx.Error(err, "failed to fetch departments")
			resp.RespondError(w, r, errs.Wrap(errs.ErrDatabase, err))
			return
		}
		resp.RespondSuccess(w, r, lo.Compact(departments))
	}
}

// HandleListHospitals returns every hospital.
func HandleListHospitals(deps *AppDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hospitals, err := deps.DB.ListHospitals(r.Context())
		respondList(w, r, hospitals, err, "hospital")
	}
}
