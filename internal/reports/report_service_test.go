package reports

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"wifi-analytics/internal/analytics"
	analyticsmocks "wifi-analytics/internal/analytics/mocks"
	chartsmocks "wifi-analytics/internal/charts/mocks"
	datasetsmocks "wifi-analytics/internal/datasets/mocks"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/scanners"
	"wifi-analytics/internal/shared/svcerrors"
	"wifi-analytics/internal/stores"
	storesmocks "wifi-analytics/internal/stores/mocks"
	"wifi-analytics/internal/vendors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	query    *analyticsmocks.MockQueryService
	store    *storesmocks.MockReportStore
	renderer *chartsmocks.MockRenderer
	service  ReportService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		query:    analyticsmocks.NewMockQueryService(ctrl),
		store:    storesmocks.NewMockReportStore(ctrl),
		renderer: chartsmocks.NewMockRenderer(ctrl),
	}
	f.service = NewReportService(f.query, f.store, f.renderer)
	return f
}

var (
	testRequest = ReportRequest{
		AccessPointID: "40A6E8:6C:5B:05",
		Since:         "1607173201",
		DeviceID:      "4C3C16:46:65:62",
	}
	testRanking = []models.VendorCount{{Vendor: "Samsung Electronics Co.,Ltd", Count: 3}}
	testCube    = models.ByteCube{
		"2020-12-05": {"001122:AA:BB:CC": {models.DirectionReceived: 500}},
	}
	testChanges = []models.BuildingChange{{Timestamp: 1607173201, Building: "11A"}}
)

func (f *fixture) expectQueries() {
	f.query.EXPECT().ValidateReport("", testRequest.AccessPointID, testRequest.Since, testRequest.DeviceID).Return(nil)
	f.query.EXPECT().TopVendors(gomock.Any(), "").Return(testRanking, nil)
	f.query.EXPECT().ByteTotals(gomock.Any()).Return(testCube, nil)
	f.query.EXPECT().UniqueClients(gomock.Any(), testRequest.AccessPointID, testRequest.Since).Return([]string{"4C3C16:46:65:62"}, nil)
	f.query.EXPECT().BuildingChanges(gomock.Any(), testRequest.DeviceID).Return(testChanges, nil)
}

func keyFor(runID, name string) string {
	return "reports/" + runID + "/" + name
}

func TestReportService_Run_Success(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.expectQueries()
	f.renderer.EXPECT().Render(gomock.Any(), testRanking).DoAndReturn(func(w io.Writer, _ []models.VendorCount) error {
		_, err := w.Write([]byte("jpeg"))
		return err
	})

	var runID string
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any(), ArtifactTopVendors, testRanking).
		DoAndReturn(func(_ context.Context, id string, name string, _ any) (string, error) {
			runID = id
			return keyFor(id, name), nil
		})
	f.store.EXPECT().PutBlob(gomock.Any(), gomock.Any(), ArtifactTopVendorsChart, []byte("jpeg")).
		DoAndReturn(func(_ context.Context, id string, name string, _ []byte) (string, error) {
			return keyFor(id, name), nil
		})
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any(), ArtifactByteTotals, testCube).
		DoAndReturn(func(_ context.Context, id string, name string, _ any) (string, error) {
			return keyFor(id, name), nil
		})
	f.store.EXPECT().PutByteTotals(gomock.Any(), gomock.Any(), ArtifactByteTotalsTable, testCube).
		DoAndReturn(func(_ context.Context, id string, name string, _ models.ByteCube) (string, error) {
			return keyFor(id, name), nil
		})
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any(), ArtifactUniqueClients, []string{"4C3C16:46:65:62"}).
		DoAndReturn(func(_ context.Context, id string, name string, _ any) (string, error) {
			return keyFor(id, name), nil
		})
	f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any(), ArtifactBuildingChanges, []string{"2020-Dec-05 13:00:01"}).
		DoAndReturn(func(_ context.Context, id string, name string, _ any) (string, error) {
			return keyFor(id, name), nil
		})

	result, err := f.service.Run(context.Background(), testRequest)
	require.NoError(t, err)

	require.NotEmpty(t, runID)
	assert.Equal(t, runID, result.RunID)
	assert.Equal(t, testRanking, result.TopVendors)
	assert.Equal(t, []string{"2020-12-05"}, result.Dates)
	assert.Equal(t, []string{"4C3C16:46:65:62"}, result.UniqueClients)
	assert.Equal(t, []string{"2020-Dec-05 13:00:01"}, result.BuildingChanges)
	assert.Equal(t, testCube, result.ByteTotals)
	assert.Len(t, result.Artifacts, 6)
	assert.Equal(t, keyFor(runID, ArtifactByteTotalsTable), result.Artifacts[ArtifactByteTotalsTable])
}

func TestReportService_Run_InvalidParamsSkipQueries(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	paramErr := svcerrors.NewInvalidArgumentError("QRY_1000", "accessPointID must look like 40A6E8:6C:5B:05", nil)
	f.query.EXPECT().ValidateReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(paramErr)
	// No query, Render or store calls are expected.

	result, err := f.service.Run(context.Background(), testRequest)
	assert.Nil(t, result)
	assert.Same(t, paramErr, err)
}

func TestReportService_Run_InvalidParamsNeverOpenDataset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		req  ReportRequest
	}{
		{name: "access point", req: ReportRequest{AccessPointID: "not-an-ap", Since: "1607173201", DeviceID: "4C3C16:46:65:62"}},
		{name: "since", req: ReportRequest{AccessPointID: "40A6E8:6C:5B:05", Since: "soon", DeviceID: "4C3C16:46:65:62"}},
		{name: "device", req: ReportRequest{AccessPointID: "40A6E8:6C:5B:05", Since: "1607173201", DeviceID: "nobody"}},
		{name: "limit", req: ReportRequest{AccessPointID: "40A6E8:6C:5B:05", Since: "1607173201", DeviceID: "4C3C16:46:65:62", TopLimit: "1000"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			source := datasetsmocks.NewMockSource(ctrl)
			source.EXPECT().LogKey().Return("datasets/logs.csv").AnyTimes()
			source.EXPECT().OpenLog(gomock.Any()).Times(0)
			source.EXPECT().OpenAccessPoints(gomock.Any()).Times(0)
			queryService := analytics.NewQueryService(source, vendors.NewTable(nil), scanners.ParallelOptions{Workers: 2})
			service := NewReportService(queryService, storesmocks.NewMockReportStore(ctrl), chartsmocks.NewMockRenderer(ctrl))

			result, err := service.Run(context.Background(), tt.req)
			assert.Nil(t, result)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, "QRY_1000", svcErr.Code)
			assert.False(t, svcErr.IsInternalError())
		})
	}
}

func TestReportService_Run_QueryErrorStopsRun(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	queryErr := svcerrors.NewInvalidInputError("QRY_2000", "dataset format violation: line 7: short line", nil)
	f.query.EXPECT().ValidateReport(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.query.EXPECT().TopVendors(gomock.Any(), "").Return(testRanking, nil)
	f.query.EXPECT().ByteTotals(gomock.Any()).Return(testCube, nil)
	f.query.EXPECT().UniqueClients(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, queryErr)
	// No BuildingChanges, Render or store calls are expected.

	result, err := f.service.Run(context.Background(), testRequest)
	assert.Nil(t, result)
	assert.Same(t, queryErr, err)
}

func TestReportService_Run_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		setup    func(f *fixture)
		wantCode string
	}{
		{
			name: "chart rendering fails",
			setup: func(f *fixture) {
				f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(errors.New("canvas too small"))
			},
			wantCode: codeInternalChartFailed,
		},
		{
			name: "store fails",
			setup: func(f *fixture) {
				f.renderer.EXPECT().Render(gomock.Any(), gomock.Any()).Return(nil)
				f.store.EXPECT().PutJSON(gomock.Any(), gomock.Any(), ArtifactTopVendors, gomock.Any()).
					Return("", stores.ErrArtifactAlreadyExists)
			},
			wantCode: codeInternalStoreFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			f.expectQueries()
			tt.setup(f)

			_, err := f.service.Run(context.Background(), testRequest)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, svcErr.Code)
			assert.True(t, svcErr.IsInternalError())
		})
	}
}

func TestReportService_WriteTopVendorsChart(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.query.EXPECT().TopVendors(gomock.Any(), "5").Return(testRanking, nil)
	f.renderer.EXPECT().Render(gomock.Any(), testRanking).DoAndReturn(func(w io.Writer, _ []models.VendorCount) error {
		_, err := w.Write([]byte("jpeg"))
		return err
	})
	f.renderer.EXPECT().ContentType().Return("image/jpeg")

	var buf bytes.Buffer
	contentType, err := f.service.WriteTopVendorsChart(context.Background(), &buf, "5")
	require.NoError(t, err)
	assert.Equal(t, "image/jpeg", contentType)
	assert.Equal(t, "jpeg", buf.String())
}

func TestReportService_WriteTopVendorsChart_RenderFailureWritesNothing(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.query.EXPECT().TopVendors(gomock.Any(), "").Return(testRanking, nil)
	f.renderer.EXPECT().Render(gomock.Any(), testRanking).DoAndReturn(func(w io.Writer, _ []models.VendorCount) error {
		_, _ = w.Write([]byte("partial"))
		return errors.New("encode failed")
	})

	var buf bytes.Buffer
	_, err := f.service.WriteTopVendorsChart(context.Background(), &buf, "")
	svcErr, ok := svcerrors.AsServiceError(err)
	require.True(t, ok)
	assert.Equal(t, codeInternalChartFailed, svcErr.Code)
	assert.Zero(t, buf.Len())
}

func TestReportService_OpenArtifact(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		artifact        string
		getErr          error
		wantCode        string
		wantContentType string
	}{
		{name: "json", artifact: ArtifactTopVendors, wantContentType: "application/json"},
		{name: "jpeg", artifact: ArtifactTopVendorsChart, wantContentType: "image/jpeg"},
		{name: "parquet", artifact: ArtifactByteTotalsTable, wantContentType: "application/vnd.apache.parquet"},
		{name: "unknown extension", artifact: "notes.txt", wantContentType: "application/octet-stream"},
		{name: "not found", artifact: "nope.json", getErr: stores.ErrArtifactNotFound, wantCode: codeArtifactNotFound},
		{name: "invalid", artifact: "..", getErr: stores.ErrInvalidArtifactKey, wantCode: codeInvalidArtifactKey},
		{name: "storage", artifact: ArtifactTopVendors, getErr: errors.New("bucket offline"), wantCode: codeInternalStoreFailed},
	}

	const runID = "01HZY3J5Q2Z6F2K8V9W1X7T4M0"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			if tt.getErr != nil {
				f.store.EXPECT().Get(gomock.Any(), runID, tt.artifact).Return(nil, tt.getErr)
			} else {
				f.store.EXPECT().Get(gomock.Any(), runID, tt.artifact).Return(io.NopCloser(strings.NewReader("{}")), nil)
			}

			rc, contentType, err := f.service.OpenArtifact(context.Background(), runID, tt.artifact)
			if tt.wantCode != "" {
				svcErr, ok := svcerrors.AsServiceError(err)
				require.True(t, ok)
				assert.Equal(t, tt.wantCode, svcErr.Code)
				return
			}
			require.NoError(t, err)
			defer rc.Close()
			assert.Equal(t, tt.wantContentType, contentType)
		})
	}
}

func TestReportService_OpenArtifact_InvalidRunID(t *testing.T) {
	t.Parallel()

	for _, runID := range []string{"", "..", "run", "01HZY3J5Q2Z6F2K8V9W1X7T4M0/.."} {
		t.Run(runID, func(t *testing.T) {
			t.Parallel()

			f := newFixture(t)
			_, _, err := f.service.OpenArtifact(context.Background(), runID, ArtifactTopVendors)
			svcErr, ok := svcerrors.AsServiceError(err)
			require.True(t, ok)
			assert.Equal(t, codeInvalidArtifactKey, svcErr.Code)
		})
	}
}
