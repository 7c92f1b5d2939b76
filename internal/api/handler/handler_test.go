package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/repository"
	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/storage"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/api/handler/router"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/exporting"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/importing"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/recording"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/usecases/reporting"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/apiErrors"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store, err := storage.New(t.TempDir())
	require.NoError(t, err)

	saleRepo := repository.NewSaleRepository(store)
	expenseRepo := repository.NewExpenseRepository(store)
	profileRepo := repository.NewProfileRepository(store)

	reporter := reporting.NewService(saleRepo, expenseRepo)
	recorder := recording.NewService(store, saleRepo, expenseRepo, profileRepo)
	importer := importing.NewService(saleRepo, expenseRepo, profileRepo)
	exporter := exporting.NewService(reporter)

	return router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Sales(reporter, recorder, importer)...),
		router.WithRoutes(Expenses(reporter, recorder)...),
		router.WithRoutes(Dashboard(reporter, exporter)...),
		router.WithRoutes(Profile(recorder)...),
	)
}

func doRequest(t *testing.T, rt http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	rt.ServeHTTP(rec, req)

	return rec
}

func TestSalesEndpoints(t *testing.T) {
	rt := newTestRouter(t)

	t.Run("POST /v1/sales deve registrar uma venda manual", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/sales",
			`{"data":"2024-07-15","valorBruto":150.0,"valorLiquido":135.0}`)

		require.Equal(t, http.StatusCreated, rec.Code)

		var sale domain.Sale
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sale))
		assert.Equal(t, 2024, sale.Year)
		assert.Equal(t, 7, sale.Month)
		assert.Equal(t, domain.OriginOrganic, sale.Origin)
	})

	t.Run("GET /v1/sales deve listar o que foi registrado", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/sales?year=2024&month=7", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var sales []domain.Sale
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &sales))
		assert.Len(t, sales, 1)
	})

	t.Run("GET /v1/sales com mês inválido deve responder 400", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/sales?year=2024&month=13", "")

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
	})

	t.Run("POST /v1/sales com data inválida deve responder 400", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/sales",
			`{"data":"15/07/2024","valorBruto":10.0,"valorLiquido":9.0}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestImportEndpoint(t *testing.T) {
	rt := newTestRouter(t)

	csvContent := "Ano,Mês,Dia,Quantidade de Vendas,Valor Bruto,Valor Líquido\n" +
		"2024,Julho,15,2,\"200,00\",\"180,00\"\n"

	t.Run("POST /v1/sales/import deve importar o lote", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/sales/import?year=2024&month=7", csvContent)

		require.Equal(t, http.StatusCreated, rec.Code)

		var result importing.ImportResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
		assert.Equal(t, 2, result.ImportedCount)
		assert.NotEmpty(t, result.BatchID)
	})

	t.Run("Sem ano e mês deve responder 400", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/sales/import", csvContent)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Linha inválida deve responder 422 com a linha no detalhe", func(t *testing.T) {
		invalid := "Ano,Mês,Dia,Quantidade de Vendas,Valor Bruto,Valor Líquido\n" +
			"2024,Julho,40,1,\"100,00\",\"90,00\"\n"

		rec := doRequest(t, rt, http.MethodPost, "/v1/sales/import?year=2024&month=7", invalid)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrMalformedRow, apiErr.Code)
	})

	t.Run("Arquivo sem vendas válidas deve responder 422", func(t *testing.T) {
		empty := "Ano,Mês,Dia,Quantidade de Vendas,Valor Bruto,Valor Líquido\n" +
			"Total,,,0,\"0,00\",\"0,00\"\n"

		rec := doRequest(t, rt, http.MethodPost, "/v1/sales/import?year=2024&month=7", empty)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrNoValidData, apiErr.Code)
	})
}

func TestExpenseEndpoints(t *testing.T) {
	rt := newTestRouter(t)

	var created domain.Expense

	t.Run("POST /v1/expenses deve registrar a despesa", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/expenses",
			`{"nome":"Aluguel","valor":1200.0,"tipo":"fixa","categoria":"Moradia","data":"2024-07-01"}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
		assert.NotEmpty(t, created.ID)
	})

	t.Run("PUT /v1/expenses/:id deve substituir o registro", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPut, "/v1/expenses/"+created.ID,
			`{"nome":"Aluguel reajustado","valor":1300.0,"tipo":"fixa","data":"2024-07-01"}`)

		require.Equal(t, http.StatusOK, rec.Code)

		var updated domain.Expense
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Aluguel reajustado", updated.Name)
	})

	t.Run("PUT em id inexistente deve responder 404", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPut, "/v1/expenses/nao-existe",
			`{"nome":"X","valor":1.0,"tipo":"fixa","data":"2024-07-01"}`)

		require.Equal(t, http.StatusNotFound, rec.Code)

		var apiErr apiErrors.APIError
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
		assert.Equal(t, apiErrors.ErrRecordNotFound, apiErr.Code)
	})

	t.Run("DELETE /v1/expenses/:id deve responder 204", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodDelete, "/v1/expenses/"+created.ID, "")
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("POST com tipo fora da enumeração deve responder 400", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodPost, "/v1/expenses",
			`{"nome":"X","valor":1.0,"tipo":"outro","data":"2024-07-01"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDashboardEndpoints(t *testing.T) {
	rt := newTestRouter(t)

	doRequest(t, rt, http.MethodPost, "/v1/sales",
		`{"data":"2024-07-15","valorBruto":100.0,"valorLiquido":90.0}`)
	doRequest(t, rt, http.MethodPost, "/v1/expenses",
		`{"nome":"Anúncios","valor":30.0,"tipo":"variavel","data":"2024-07-10","ehInvestimento":true}`)

	t.Run("GET /v1/dashboard deve recalcular os KPIs do mês", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/dashboard?year=2024&month=7", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var dashboard reporting.Dashboard
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
		assert.Equal(t, 100.0, dashboard.KPIs.GrossRevenue)
		assert.Equal(t, 60.0, dashboard.KPIs.NetProfit)
		assert.True(t, dashboard.KPIs.ROIApplicable)
		assert.Equal(t, 200.0, dashboard.KPIs.ROI)
		assert.Equal(t, "Jul/2024", dashboard.Period)
	})

	t.Run("GET /v1/dashboard sem ano e mês deve responder 400", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/dashboard", "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("GET /v1/periods deve listar os meses com dados", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/periods", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var periods []domain.MonthPeriod
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &periods))
		require.Len(t, periods, 1)
		assert.Equal(t, "Jul/2024", periods[0].Label)
	})

	t.Run("GET /v1/export deve servir o CSV para download", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/export?year=2024&month=7", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
		assert.Contains(t, rec.Header().Get("Content-Disposition"), "relatorio-financeiro-2024-07.csv")
		assert.Contains(t, rec.Body.String(), "RELATÓRIO FINANCEIRO - Jul/2024")
	})
}

func TestProfileEndpoints(t *testing.T) {
	rt := newTestRouter(t)

	doRequest(t, rt, http.MethodPost, "/v1/sales",
		`{"data":"2024-07-15","valorBruto":100.0,"valorLiquido":90.0}`)

	t.Run("GET /v1/profile deve refletir os totais acumulados", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodGet, "/v1/profile", "")

		require.Equal(t, http.StatusOK, rec.Code)

		var profile domain.Profile
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
		assert.Equal(t, "Usuário", profile.Name)
		assert.Equal(t, 90.0, profile.TotalEarned)
	})

	t.Run("DELETE /v1/data deve apagar tudo", func(t *testing.T) {
		rec := doRequest(t, rt, http.MethodDelete, "/v1/data", "")
		require.Equal(t, http.StatusNoContent, rec.Code)

		listRec := doRequest(t, rt, http.MethodGet, "/v1/sales", "")
		require.Equal(t, http.StatusOK, listRec.Code)

		var sales []domain.Sale
		require.NoError(t, json.Unmarshal(listRec.Body.Bytes(), &sales))
		assert.Empty(t, sales)
	})
}
