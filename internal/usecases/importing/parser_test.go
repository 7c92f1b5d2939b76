package importing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
)

const csvHeader = "Ano,Mês,Dia,Quantidade de Vendas,Valor Bruto,Valor Líquido\n"

func TestParseCSV(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		validate func(t *testing.T, sales []domain.Sale, err error)
	}{
		{
			name:    "Deve expandir uma linha agregada em vendas individuais",
			content: csvHeader + "2024,Julho,15,3,\"450,00\",\"405,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				require.Len(t, sales, 3)

				for _, sale := range sales {
					assert.Equal(t, "2024-07-15", sale.Date)
					assert.Equal(t, 2024, sale.Year)
					assert.Equal(t, 7, sale.Month)
					assert.Equal(t, 150.0, sale.GrossAmount)
					assert.Equal(t, 135.0, sale.NetAmount)
					assert.Equal(t, domain.OriginOrganic, sale.Origin)
					assert.True(t, sale.Imported)
					assert.NotEmpty(t, sale.ID)
				}

				// IDs distintos, CreatedAt compartilhado no lote
				assert.NotEqual(t, sales[0].ID, sales[1].ID)
				assert.Equal(t, sales[0].CreatedAt, sales[1].CreatedAt)
				assert.Equal(t, sales[0].CreatedAt, sales[2].CreatedAt)
			},
		},
		{
			name:    "Deve pular a linha de totais do rodapé",
			content: csvHeader + "2024,Julho,15,1,\"100,00\",\"90,00\"\nTotal,,,1,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				assert.Len(t, sales, 1)
			},
		},
		{
			name:    "Arquivo só com cabeçalho e totais deve retornar lista vazia sem erro",
			content: csvHeader + "Total,,,0,\"0,00\",\"0,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				assert.Empty(t, sales)
			},
		},
		{
			name:    "Divisão com dízima deve arredondar o valor unitário para duas casas",
			content: csvHeader + "2024,Julho,1,3,\"100,00\",\"100,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				require.Len(t, sales, 3)
				assert.Equal(t, 33.33, sales[0].GrossAmount)
				assert.Equal(t, 33.33, sales[0].NetAmount)
			},
		},
		{
			name:    "Linha com menos de 6 colunas deve abortar com a linha do erro",
			content: csvHeader + "2024,Julho,15,3,\"450,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.Error(t, err)
				assert.Nil(t, sales)

				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 2, parseErr.Line)
				assert.Contains(t, parseErr.Reason, "6 colunas")
			},
		},
		{
			name:    "Ano fora do intervalo aceito deve abortar",
			content: csvHeader + "1999,Julho,15,1,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, "ano inválido")
			},
		},
		{
			name:    "Mês com grafia desconhecida deve abortar",
			content: csvHeader + "2024,julho,15,1,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, "mês inválido")
			},
		},
		{
			name:    "Dia inexistente no calendário deve abortar",
			content: csvHeader + "2023,Fevereiro,29,1,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, "data inválida")
			},
		},
		{
			name:    "29 de fevereiro em ano bissexto deve ser aceito",
			content: csvHeader + "2024,Fevereiro,29,1,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				require.Len(t, sales, 1)
				assert.Equal(t, "2024-02-29", sales[0].Date)
			},
		},
		{
			name:    "Quantidade de vendas zero deve abortar",
			content: csvHeader + "2024,Julho,15,0,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, "quantidade de vendas inválida")
			},
		},
		{
			name:    "Valor negativo deve abortar",
			content: csvHeader + "2024,Julho,15,1,\"-10,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, "valor inválido")
			},
		},
		{
			name:    "Linha inválida no meio do arquivo deve descartar o lote inteiro",
			content: csvHeader + "2024,Julho,15,1,\"100,00\",\"90,00\"\n2024,Julho,40,1,\"100,00\",\"90,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.Error(t, err)
				assert.Nil(t, sales)

				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Equal(t, 3, parseErr.Line)
			},
		},
		{
			name:    "Valor com separador de milhar deve ser rejeitado",
			content: csvHeader + "2024,Julho,15,1,\"1,000,00\",\"900,00\"\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				// Toda vírgula vira ponto, então "1,000,00" não parseia como
				// número e a linha é rejeitada
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				assert.Contains(t, parseErr.Reason, "valor inválido")
			},
		},
		{
			name:    "Valores sem aspas e sem casas decimais devem ser aceitos",
			content: csvHeader + "2024,Dezembro,31,2,300,250\n",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				require.Len(t, sales, 2)
				assert.Equal(t, "2024-12-31", sales[0].Date)
				assert.Equal(t, 150.0, sales[0].GrossAmount)
				assert.Equal(t, 125.0, sales[0].NetAmount)
			},
		},
		{
			name:    "Conteúdo vazio deve retornar lista vazia sem erro",
			content: "",
			validate: func(t *testing.T, sales []domain.Sale, err error) {
				require.NoError(t, err)
				assert.Empty(t, sales)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sales, err := ParseCSV(tt.content)
			tt.validate(t, sales, err)
		})
	}
}

func TestParseCSV_AggregatePreserved(t *testing.T) {
	// A soma das vendas expandidas deve devolver o agregado do dia, a menos
	// da perda de centavos do arredondamento unitário
	sales, err := ParseCSV(csvHeader + "2024,Março,10,4,\"1000,00\",\"900,00\"\n")
	require.NoError(t, err)
	require.Len(t, sales, 4)

	var gross, net float64
	for _, sale := range sales {
		gross += sale.GrossAmount
		net += sale.NetAmount
	}

	assert.InDelta(t, 1000.0, gross, 0.04)
	assert.InDelta(t, 900.0, net, 0.04)
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{Line: 7, Reason: "ano inválido: abc"}
	assert.Equal(t, "linha 7: ano inválido: abc", err.Error())
}
