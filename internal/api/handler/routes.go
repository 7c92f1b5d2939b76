package handler

import (
	"net/http"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/api/handler/router"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/scheduler"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/exporting"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/importing"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/recording"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Sales(reporter reporting.Reporter, recorder recording.Recorder, importer importing.Importer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/sales",
			Method:  http.MethodGet,
			Handler: ListSales(reporter),
		},
		{
			Path:    "/v1/sales",
			Method:  http.MethodPost,
			Handler: CreateSale(recorder),
		},
		{
			Path:    "/v1/sales/import",
			Method:  http.MethodPost,
			Handler: ImportSales(importer),
		},
	}
}

func Expenses(reporter reporting.Reporter, recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses",
			Method:  http.MethodGet,
			Handler: ListExpenses(reporter),
		},
		{
			Path:    "/v1/expenses",
			Method:  http.MethodPost,
			Handler: CreateExpense(recorder),
		},
		{
			Path:    "/v1/expenses/:id",
			Method:  http.MethodPut,
			Handler: UpdateExpense(recorder),
		},
		{
			Path:    "/v1/expenses/:id",
			Method:  http.MethodDelete,
			Handler: DeleteExpense(recorder),
		},
	}
}

func Dashboard(reporter reporting.Reporter, exporter exporting.Exporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(reporter),
		},
		{
			Path:    "/v1/periods",
			Method:  http.MethodGet,
			Handler: GetAvailablePeriods(reporter),
		},
		{
			Path:    "/v1/export",
			Method:  http.MethodGet,
			Handler: ExportReport(exporter),
		},
	}
}

func Profile(recorder recording.Recorder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/profile",
			Method:  http.MethodGet,
			Handler: GetProfile(recorder),
		},
		{
			Path:    "/v1/data",
			Method:  http.MethodDelete,
			Handler: ClearData(recorder),
		},
	}
}

func CronJobs(backupService *scheduler.BackupService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/backup/run",
			Method:  http.MethodPost,
			Handler: RunBackup(backupService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(backupService),
		},
	}
}
