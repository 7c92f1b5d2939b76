package reporting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/pagamentossegurosbr/managerv1-notch/infrastructure/repository/mocks"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
)

func TestService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)

	service := NewService(mockSaleRepo, mockExpenseRepo)

	allSales := []domain.Sale{
		{ID: "s1", Date: "2024-07-05", Year: 2024, Month: 7, GrossAmount: 100.0, NetAmount: 90.0},
		{ID: "s2", Date: "2024-07-20", Year: 2024, Month: 7, GrossAmount: 200.0, NetAmount: 180.0},
		{ID: "s3", Date: "2024-06-10", Year: 2024, Month: 6, GrossAmount: 500.0, NetAmount: 450.0},
	}
	allExpenses := []domain.Expense{
		{ID: "e1", Date: "2024-07-10", Year: 2024, Month: 7, Amount: 50.0, Kind: domain.KindFixed},
		{ID: "e2", Date: "2024-06-15", Year: 2024, Month: 6, Amount: 70.0, Kind: domain.KindVariable},
	}

	tests := []struct {
		name     string
		year     int
		month    int
		filter   domain.DateFilter
		validate func(t *testing.T, dashboard *Dashboard)
	}{
		{
			name:  "Deve recalcular os KPIs apenas sobre o mês selecionado",
			year:  2024,
			month: 7,
			validate: func(t *testing.T, dashboard *Dashboard) {
				assert.Equal(t, 300.0, dashboard.KPIs.GrossRevenue)
				assert.Equal(t, 270.0, dashboard.KPIs.NetRevenue)
				assert.Equal(t, 2, dashboard.KPIs.TotalSaleCount)
				assert.Equal(t, 50.0, dashboard.KPIs.FixedExpenses)
				assert.Equal(t, 220.0, dashboard.KPIs.NetProfit)
				assert.Equal(t, "Jul/2024", dashboard.Period)
			},
		},
		{
			name:   "Filtro de datas ativo deve restringir dentro do mês",
			year:   2024,
			month:  7,
			filter: domain.DateFilter{StartDate: "2024-07-01", EndDate: "2024-07-10", Active: true},
			validate: func(t *testing.T, dashboard *Dashboard) {
				assert.Equal(t, 100.0, dashboard.KPIs.GrossRevenue)
				assert.Equal(t, 1, dashboard.KPIs.TotalSaleCount)
				assert.Equal(t, 50.0, dashboard.KPIs.FixedExpenses)
				assert.Equal(t, "01/07/2024 - 10/07/2024", dashboard.Period)
			},
		},
		{
			name:  "Mês sem dados deve produzir snapshot zerado",
			year:  2025,
			month: 1,
			validate: func(t *testing.T, dashboard *Dashboard) {
				assert.Equal(t, 0.0, dashboard.KPIs.GrossRevenue)
				assert.Equal(t, 0, dashboard.KPIs.TotalSaleCount)
				assert.False(t, dashboard.KPIs.ROIApplicable)
				assert.Equal(t, "Jan/2025", dashboard.Period)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSaleRepo.EXPECT().ListSales().Return(allSales, nil)
			mockExpenseRepo.EXPECT().ListExpenses().Return(allExpenses, nil)

			dashboard, err := service.Dashboard(tt.year, tt.month, tt.filter)

			require.NoError(t, err)
			require.NotNil(t, dashboard)
			tt.validate(t, dashboard)
		})
	}
}

func TestService_ListSales(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)

	service := NewService(mockSaleRepo, mockExpenseRepo)

	allSales := []domain.Sale{
		{ID: "s1", Year: 2024, Month: 7},
		{ID: "s2", Year: 2024, Month: 6},
	}

	t.Run("Ano e mês zerados devem listar tudo", func(t *testing.T) {
		mockSaleRepo.EXPECT().ListSales().Return(allSales, nil)

		sales, err := service.ListSales(0, 0)
		require.NoError(t, err)
		assert.Len(t, sales, 2)
	})

	t.Run("Mês informado deve filtrar por igualdade", func(t *testing.T) {
		mockSaleRepo.EXPECT().ListSales().Return(allSales, nil)

		sales, err := service.ListSales(2024, 6)
		require.NoError(t, err)
		require.Len(t, sales, 1)
		assert.Equal(t, "s2", sales[0].ID)
	})

	t.Run("Erro do repositório deve ser propagado", func(t *testing.T) {
		mockSaleRepo.EXPECT().ListSales().Return(nil, assert.AnError)

		sales, err := service.ListSales(0, 0)
		assert.Nil(t, sales)
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestService_AvailablePeriods(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSaleRepo := mocks.NewMockSaleRepository(ctrl)
	mockExpenseRepo := mocks.NewMockExpenseRepository(ctrl)

	service := NewService(mockSaleRepo, mockExpenseRepo)

	mockSaleRepo.EXPECT().ListSales().Return([]domain.Sale{
		{Year: 2024, Month: 7},
		{Year: 2024, Month: 7},
	}, nil)
	mockExpenseRepo.EXPECT().ListExpenses().Return([]domain.Expense{
		{Year: 2024, Month: 8},
	}, nil)

	periods, err := service.AvailablePeriods()

	require.NoError(t, err)
	require.Len(t, periods, 2)
	assert.Equal(t, "Ago/2024", periods[0].Label)
	assert.Equal(t, "Jul/2024", periods[1].Label)
}
