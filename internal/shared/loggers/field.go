package loggers

const (
	FieldApp        = "app"
	FieldComponent  = "component"
	FieldHttpMethod = "http_method"
	FieldHttpPath   = "http_path"
	FieldHttpStatus = "http_status"

	FieldDuration   = "duration"
	FieldRequestID  = "request_id"
	FieldErrorStack = "error_stack"
	FieldErrorCode  = "error_code"

	FieldPartitionId = "partition_id"

	FieldQuery         = "query"
	FieldDatasetKey    = "dataset_key"
	FieldAccessPointID = "access_point_id"
	FieldDeviceID      = "device_id"
	FieldResults       = "results"
	FieldRunID         = "run_id"
	FieldArtifactKey   = "artifact_key"
	FieldVendors       = "vendors"
	FieldWorkers       = "workers"
	FieldCompression   = "compression"
)
