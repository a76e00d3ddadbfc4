package analytics

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"wifi-analytics/internal/accesspoints"
	"wifi-analytics/internal/datasets"
	"wifi-analytics/internal/models"
	"wifi-analytics/internal/scanners"
	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/shared/metrics"
	"wifi-analytics/internal/shared/svcerrors"
	"wifi-analytics/internal/shared/validators"
)

const (
	QueryTopVendors      = "top_vendors"
	QueryByteTotals      = "byte_totals"
	QueryUniqueClients   = "unique_clients"
	QueryBuildingChanges = "building_changes"
)

const maxTopLimit = 100

// QueryService answers the four dataset queries. Every call opens the dataset and makes one full
// pass over it; results are never cached between calls.
//
//go:generate mockgen -source=query_service.go -destination=./mocks/query_service_mock.go -package=mocks
type QueryService interface {
	// TopVendors ranks vendors by distinct device count, most devices first. An empty limit means
	// scanners.DefaultTopVendors.
	TopVendors(ctx context.Context, limit string) ([]models.VendorCount, error)
	// ByteTotals sums bytes per UTC date, access point and direction.
	ByteTotals(ctx context.Context) (models.ByteCube, error)
	// UniqueClients lists the devices whose first upload through accessPointID falls within three
	// hours after since (unix seconds).
	UniqueClients(ctx context.Context, accessPointID string, since string) ([]string, error)
	// BuildingChanges lists the moments deviceID shows up in a different building.
	BuildingChanges(ctx context.Context, deviceID string) ([]models.BuildingChange, error)
	// ValidateReport checks the parameters of all four queries without opening the dataset and
	// returns the error the first failing query would return.
	ValidateReport(limit, accessPointID, since, deviceID string) error
}

type topVendorsParams struct {
	Limit int `validate:"min=1,max=100"`
}

type uniqueClientsParams struct {
	AccessPointID string `validate:"required,macid"`
	Since         int64  `validate:"gte=0"`
}

type buildingChangesParams struct {
	DeviceID string `validate:"required,macid"`
}

type queryService struct {
	source   datasets.Source
	vendors  scanners.VendorLookup
	parallel scanners.ParallelOptions
	validate *validators.Validate
}

func NewQueryService(source datasets.Source, vendorLookup scanners.VendorLookup, parallel scanners.ParallelOptions) QueryService {
	return &queryService{
		source:   source,
		vendors:  vendorLookup,
		parallel: parallel,
		validate: validators.New(),
	}
}

func (s *queryService) parseTopVendors(limit string) (topVendorsParams, *svcerrors.ServiceError) {
	params := topVendorsParams{Limit: scanners.DefaultTopVendors}
	msg := fmt.Sprintf("limit must be an integer between 1 and %d", maxTopLimit)
	if strings.TrimSpace(limit) != "" {
		n, err := strconv.Atoi(strings.TrimSpace(limit))
		if err != nil {
			return params, errInvalidArgument(msg, err)
		}
		params.Limit = n
	}
	if err := s.validate.Struct(params); err != nil {
		return params, errInvalidArgument(msg, err)
	}
	return params, nil
}

func (s *queryService) parseUniqueClients(accessPointID string, since string) (uniqueClientsParams, *svcerrors.ServiceError) {
	ts, err := strconv.ParseInt(strings.TrimSpace(since), 10, 64)
	if err != nil {
		return uniqueClientsParams{}, errInvalidArgument("since must be a unix timestamp in seconds", err)
	}
	params := uniqueClientsParams{AccessPointID: accessPointID, Since: ts}
	if err := s.validate.Struct(params); err != nil {
		return params, errInvalidArgument(validationMessage(err), err)
	}
	return params, nil
}

func (s *queryService) parseBuildingChanges(deviceID string) (buildingChangesParams, *svcerrors.ServiceError) {
	params := buildingChangesParams{DeviceID: deviceID}
	if err := s.validate.Struct(params); err != nil {
		return params, errInvalidArgument(validationMessage(err), err)
	}
	return params, nil
}

func (s *queryService) ValidateReport(limit, accessPointID, since, deviceID string) error {
	if _, svcErr := s.parseTopVendors(limit); svcErr != nil {
		return s.reject(QueryTopVendors, svcErr)
	}
	if _, svcErr := s.parseUniqueClients(accessPointID, since); svcErr != nil {
		return s.reject(QueryUniqueClients, svcErr)
	}
	if _, svcErr := s.parseBuildingChanges(deviceID); svcErr != nil {
		return s.reject(QueryBuildingChanges, svcErr)
	}
	return nil
}

func (s *queryService) TopVendors(ctx context.Context, limit string) ([]models.VendorCount, error) {
	params, svcErr := s.parseTopVendors(limit)
	if svcErr != nil {
		return nil, s.reject(QueryTopVendors, svcErr)
	}

	var ranking []models.VendorCount
	err := s.run(ctx, QueryTopVendors, func(ctx context.Context, r io.Reader) (int, error) {
		var err error
		ranking, err = scanners.TopVendors(ctx, r, s.vendors, params.Limit)
		return len(ranking), err
	})
	if err != nil {
		return nil, err
	}
	return ranking, nil
}

func (s *queryService) ByteTotals(ctx context.Context) (models.ByteCube, error) {
	var cube models.ByteCube
	err := s.run(ctx, QueryByteTotals, func(ctx context.Context, r io.Reader) (int, error) {
		var err error
		cube, err = scanners.ByteTotals(ctx, r, s.parallel)
		return len(cube), err
	})
	if err != nil {
		return nil, err
	}
	return cube, nil
}

func (s *queryService) UniqueClients(ctx context.Context, accessPointID string, since string) ([]string, error) {
	params, svcErr := s.parseUniqueClients(accessPointID, since)
	if svcErr != nil {
		return nil, s.reject(QueryUniqueClients, svcErr)
	}

	ctx = withField(ctx, loggers.FieldAccessPointID, accessPointID)
	var clients []string
	err := s.run(ctx, QueryUniqueClients, func(ctx context.Context, r io.Reader) (int, error) {
		var err error
		clients, err = scanners.UniqueClients(ctx, r, params.AccessPointID, params.Since)
		return len(clients), err
	})
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (s *queryService) BuildingChanges(ctx context.Context, deviceID string) ([]models.BuildingChange, error) {
	params, svcErr := s.parseBuildingChanges(deviceID)
	if svcErr != nil {
		return nil, s.reject(QueryBuildingChanges, svcErr)
	}

	ctx = withField(ctx, loggers.FieldDeviceID, deviceID)
	var changes []models.BuildingChange
	err := s.run(ctx, QueryBuildingChanges, func(ctx context.Context, r io.Reader) (int, error) {
		registry, err := s.loadAccessPoints(ctx)
		if err != nil {
			return 0, err
		}
		changes, err = scanners.BuildingChanges(ctx, r, registry, params.DeviceID)
		return len(changes), err
	})
	if err != nil {
		return nil, err
	}
	return changes, nil
}

func (s *queryService) loadAccessPoints(ctx context.Context) (*accesspoints.Registry, error) {
	rc, err := s.source.OpenAccessPoints(ctx)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	registry, err := accesspoints.Load(rc)
	if err != nil {
		return nil, fmt.Errorf("load access points: %w", err)
	}
	loggers.Ctx(ctx).Debug().Int(loggers.FieldResults, registry.Len()).Msg("access points loaded")
	return registry, nil
}

// run opens the log, hands it to scan and records the outcome of the query.
func (s *queryService) run(ctx context.Context, query string, scan func(context.Context, io.Reader) (int, error)) error {
	ctx = withField(ctx, loggers.FieldQuery, query)
	logger := loggers.Ctx(ctx)
	logger.Debug().Str(loggers.FieldDatasetKey, s.source.LogKey()).Msg("started query")

	start := time.Now()
	results, err := s.scanLog(ctx, scan)
	elapsed := time.Since(start)
	metricQueryDuration.WithLabelValues(query).Observe(elapsed.Seconds())

	if err != nil {
		svcErr := classifyScanError(err)
		metricQueryTotal.WithLabelValues(query, svcErr.Code).Inc()
		event := logger.Warn()
		if svcErr.IsInternalError() {
			event = logger.Error()
		}
		event.Err(err).
			Str(loggers.FieldErrorCode, svcErr.Code).
			Int64(loggers.FieldDuration, elapsed.Milliseconds()).
			Msg("query failed")
		return svcErr
	}

	metricQueryTotal.WithLabelValues(query, metrics.ValueNoError).Inc()
	logger.Info().
		Int(loggers.FieldResults, results).
		Int64(loggers.FieldDuration, elapsed.Milliseconds()).
		Msg("query completed")
	return nil
}

func (s *queryService) scanLog(ctx context.Context, scan func(context.Context, io.Reader) (int, error)) (int, error) {
	rc, err := s.source.OpenLog(ctx)
	if err != nil {
		return 0, err
	}
	defer rc.Close()
	return scan(ctx, rc)
}

func (s *queryService) reject(query string, svcErr *svcerrors.ServiceError) error {
	metricQueryTotal.WithLabelValues(query, svcErr.Code).Inc()
	return svcErr
}

func withField(ctx context.Context, key, value string) context.Context {
	logger := loggers.Ctx(ctx).With().Str(key, value).Logger()
	return logger.WithContext(ctx)
}

// validationMessage renders the first failed field as a client-safe message.
func validationMessage(err error) string {
	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "invalid query parameters"
	}
	fe := verrs[0]
	switch fe.Tag() {
	case validators.TagMacID:
		return fmt.Sprintf("%s must look like 40A6E8:6C:5B:05", lowerFirst(fe.Field()))
	case "required":
		return fmt.Sprintf("%s is required", lowerFirst(fe.Field()))
	default:
		return fmt.Sprintf("%s failed %s=%s", lowerFirst(fe.Field()), fe.Tag(), fe.Param())
	}
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
