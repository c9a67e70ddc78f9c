package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	locdto "github.com/hsaberwal/serunner/internal/application/location/dto"
	"github.com/hsaberwal/serunner/internal/application/setup/dto"
	"github.com/hsaberwal/serunner/internal/application/setup/usecases"
	"github.com/hsaberwal/serunner/internal/interfaces/http/handlers/testutil"
	"github.com/hsaberwal/serunner/internal/shared/errors"
)

type mockCreateLocationUC struct {
	result  *locdto.LocationDTO
	err     error
	lastReq locdto.CreateLocationRequest
	calls   int
}

func (m *mockCreateLocationUC) Execute(ctx context.Context, userID string, req locdto.CreateLocationRequest) (*locdto.LocationDTO, error) {
	m.calls++
	m.lastReq = req
	return m.result, m.err
}

type mockGetLocationUC struct {
	result *locdto.LocationDTO
	err    error
}

func (m *mockGetLocationUC) Execute(ctx context.Context, id string) (*locdto.LocationDTO, error) {
	return m.result, m.err
}

type mockListLocationsUC struct {
	result []*locdto.LocationDTO
	err    error
}

func (m *mockListLocationsUC) Execute(ctx context.Context, userID string) ([]*locdto.LocationDTO, error) {
	return m.result, m.err
}

type mockLearningContextUC struct {
	result    []*dto.LearningCorrectionDTO
	err       error
	lastQuery usecases.LearningContextQuery
}

func (m *mockLearningContextUC) Execute(ctx context.Context, query usecases.LearningContextQuery) ([]*dto.LearningCorrectionDTO, error) {
	m.lastQuery = query
	return m.result, m.err
}

func TestLocationHandler_Create(t *testing.T) {
	create := &mockCreateLocationUC{result: &locdto.LocationDTO{ID: testLocationID, Name: "Gurdwara Hall"}}
	handler := NewLocationHandler(create, &mockGetLocationUC{}, &mockListLocationsUC{}, &mockLearningContextUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/locations", map[string]interface{}{
		"name":          "Gurdwara Hall",
		"venue_type":    "gurdwara",
		"speaker_setup": map[string]interface{}{"mains": "2x QSC K12"},
	})
	testutil.SetAuthContext(c, testUserID, "user")

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "gurdwara", create.lastReq.VenueType)
	assert.JSONEq(t, `{"mains":"2x QSC K12"}`, string(create.lastReq.SpeakerSetup))
}

func TestLocationHandler_Create_MissingName(t *testing.T) {
	create := &mockCreateLocationUC{}
	handler := NewLocationHandler(create, &mockGetLocationUC{}, &mockListLocationsUC{}, &mockLearningContextUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/locations", map[string]interface{}{"venue_type": "hall"})
	testutil.SetAuthContext(c, testUserID, "user")

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, 0, create.calls)
}

func TestLocationHandler_Get_NotFound(t *testing.T) {
	get := &mockGetLocationUC{err: errors.NewNotFoundError("location not found")}
	handler := NewLocationHandler(&mockCreateLocationUC{}, get, &mockListLocationsUC{}, &mockLearningContextUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/locations/"+testLocationID, nil)
	testutil.SetAuthContext(c, testUserID, "user")
	testutil.SetURLParam(c, "id", testLocationID)

	handler.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLocationHandler_List(t *testing.T) {
	list := &mockListLocationsUC{result: []*locdto.LocationDTO{{ID: "a"}, {ID: "b"}}}
	handler := NewLocationHandler(&mockCreateLocationUC{}, &mockGetLocationUC{}, list, &mockLearningContextUC{}, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/locations", nil)
	testutil.SetAuthContext(c, testUserID, "user")

	handler.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp testutil.APIResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	var got []locdto.LocationDTO
	testutil.DecodeData(t, resp, &got)
	assert.Len(t, got, 2)
}

func TestLocationHandler_LearningContext(t *testing.T) {
	lc := &mockLearningContextUC{result: []*dto.LearningCorrectionDTO{{SetupID: testSetupID, Channel: "ch3"}}}
	handler := NewLocationHandler(&mockCreateLocationUC{}, &mockGetLocationUC{}, &mockListLocationsUC{}, lc, testutil.NewMockLogger())

	c, w := testutil.NewTestContext(http.MethodGet, "/locations/"+testLocationID+"/learning-context", nil)
	testutil.SetAuthContext(c, testUserID, "user")
	testutil.SetURLParam(c, "id", testLocationID)
	testutil.SetQueryParams(c, map[string]string{"performer_type": "Tabla"})

	handler.LearningContext(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Tabla", lc.lastQuery.PerformerType)
	assert.Equal(t, testLocationID, lc.lastQuery.LocationID)
	assert.Equal(t, testUserID, lc.lastQuery.UserID)
}
