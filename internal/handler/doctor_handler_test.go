package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	dbc "medconnect/internal/app/db/sqlc"
	"medconnect/internal/pkg/errs"
)

var doctorRows = []dbc.ListDoctorsRow{
	{ID: 1, FirstName: "John", LastName: "Snow", Specialty: "Epidemiology", ProfilePic: pgtype.Text{String: "profiles/a.png", Valid: true}},
	{ID: 2, FirstName: "Elizabeth", LastName: "Blackwell", Specialty: "Obstetrics"},
	{ID: 3, FirstName: "William", LastName: "Farr", Specialty: "Epidemiology"},
}

func TestGroupDoctorsByDepartment(t *testing.T) {
	require.Equal(t, map[string][]string{
		"Epidemiology": {"John Snow", "William Farr"},
		"Obstetrics":   {"Elizabeth Blackwell"},
	}, GroupDoctorsByDepartment(doctorRows))

	require.Empty(t, GroupDoctorsByDepartment(nil))
}

func TestListDoctors(t *testing.T) {
	env := newTestEnv(t)
	env.db.EXPECT().ListDoctors(gomock.Any()).Return(doctorRows, nil)

	rec := env.do(t, http.MethodGet, "/doctors", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var listing []DoctorListing
	decode(t, rec, &listing)
	require.Len(t, listing, 3)
	require.Equal(t, "Epidemiology", listing[0].Specialty)
	require.Equal(t, "/uploads/profiles/a.png", listing[0].ProfilePic)
	require.Empty(t, listing[1].ProfilePic)
}

func TestListDoctorsByDepartment(t *testing.T) {
	env := newTestEnv(t)
	env.db.EXPECT().ListDoctors(gomock.Any()).Return(doctorRows, nil)

	rec := env.do(t, http.MethodGet, "/api/doctors", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var grouped map[string][]string
	decode(t, rec, &grouped)
	require.Equal(t, []string{"Elizabeth Blackwell"}, grouped["Obstetrics"])
}

func TestListDepartmentsAndHospitals(t *testing.T) {
	env := newTestEnv(t)
	env.db.EXPECT().ListDepartments(gomock.Any()).Return([]string{"Cardiology", "", "Oncology"}, nil)
	env.db.EXPECT().ListHospitals(gomock.Any()).Return([]dbc.Hospital{{ID: 1, Name: "St Thomas'"}}, nil)

	rec := env.do(t, http.MethodGet, "/departments", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var departments []string
	decode(t, rec, &departments)
	require.Equal(t, []string{"Cardiology", "Oncology"}, departments)

	rec = env.do(t, http.MethodGet, "/hospitals", nil, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var hospitals []dbc.Hospital
	decode(t, rec, &hospitals)
	require.Equal(t, "St Thomas'", hospitals[0].Name)
}

func TestListDoctors_DatabaseFailure(t *testing.T) {
	env := newTestEnv(t)
	env.db.EXPECT().ListDoctors(gomock.Any()).Return(nil, errors.New("connection reset"))

	rec := env.do(t, http.MethodGet, "/doctors", nil, "")
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	require.Equal(t, errs.ErrDatabase, decode(t, rec, nil).Code)
}
