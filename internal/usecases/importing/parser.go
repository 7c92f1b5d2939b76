package importing

import (
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pagamentossegurosbr/managerv1-notch/internal/domain"
	"github.com/pagamentossegurosbr/managerv1-notch/pkg/utils"
)

// Nomes de mês aceitos no CSV, comparados de forma exata (sensível a
// maiúsculas), como na planilha de origem
var monthsByName = map[string]int{
	"Janeiro": 1, "Fevereiro": 2, "Março": 3, "Abril": 4,
	"Maio": 5, "Junho": 6, "Julho": 7, "Agosto": 8,
	"Setembro": 9, "Outubro": 10, "Novembro": 11, "Dezembro": 12,
}

// Linha de totais no rodapé da planilha, pulada silenciosamente
const totalSentinel = "Total"

// ParseError aponta a linha do arquivo (contando o cabeçalho como linha 1)
// e o motivo da rejeição. Qualquer linha inválida aborta a importação
// inteira: não existe importação parcial.
type ParseError struct {
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("linha %d: %s", e.Line, e.Reason)
}

func newParseError(line int, format string, args ...any) *ParseError {
	return &ParseError{Line: line, Reason: fmt.Sprintf(format, args...)}
}

// ParseCSV converte o conteúdo do CSV (uma linha por dia, com contagem e
// totais agregados) em vendas individuais: uma venda por unidade vendida no
// dia, com os valores do dia divididos pela contagem. Todas as vendas do
// lote compartilham o mesmo CreatedAt.
func ParseCSV(content string) ([]domain.Sale, error) {
	reader := csv.NewReader(strings.NewReader(content))
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &ParseError{Line: 1, Reason: fmt.Sprintf("erro ao processar CSV: %v", err)}
	}

	if len(records) == 0 {
		return []domain.Sale{}, nil
	}

	createdAt := time.Now()
	sales := []domain.Sale{}

	// records[0] é o cabeçalho; a primeira linha de dados é a linha 2
	for i, row := range records[1:] {
		line := i + 2

		if len(row) > 0 && row[0] == totalSentinel {
			continue
		}

		daySales, err := expandRow(row, line, createdAt)
		if err != nil {
			return nil, err
		}

		sales = append(sales, daySales...)
	}

	return sales, nil
}

func expandRow(row []string, line int, createdAt time.Time) ([]domain.Sale, error) {
	if len(row) != 6 {
		return nil, newParseError(line, "linha deve conter exatamente 6 colunas, encontradas %d", len(row))
	}

	yearField, monthField, dayField, countField, grossField, netField :=
		row[0], row[1], row[2], row[3], row[4], row[5]

	year, err := strconv.Atoi(yearField)
	if err != nil || year < 2000 || year > 2100 {
		return nil, newParseError(line, "ano inválido: %s", yearField)
	}

	month, ok := monthsByName[monthField]
	if !ok {
		return nil, newParseError(line, "mês inválido: %s", monthField)
	}

	day, err := strconv.Atoi(dayField)
	if err != nil || day < 1 || day > 31 {
		return nil, newParseError(line, "dia inválido: %s", dayField)
	}

	count, err := strconv.Atoi(countField)
	if err != nil || count <= 0 {
		return nil, newParseError(line, "quantidade de vendas inválida: %s", countField)
	}

	grossTotal, err := parseAmount(grossField)
	if err != nil {
		return nil, newParseError(line, "%v", err)
	}

	netTotal, err := parseAmount(netField)
	if err != nil {
		return nil, newParseError(line, "%v", err)
	}

	// A data só é válida se os componentes sobreviverem à normalização do
	// calendário (31 de um mês de 30 dias viraria dia 1 do mês seguinte)
	date := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if date.Year() != year || int(date.Month()) != month || date.Day() != day {
		return nil, newParseError(line, "data inválida: %d/%s/%d", day, monthField, year)
	}

	grossUnit := utils.RoundWithTwoDecimalPlace(grossTotal / float64(count))
	netUnit := utils.RoundWithTwoDecimalPlace(netTotal / float64(count))
	dateStr := fmt.Sprintf("%04d-%02d-%02d", year, month, day)

	sales := make([]domain.Sale, 0, count)
	for i := 0; i < count; i++ {
		sales = append(sales, domain.Sale{
			ID:          uuid.NewString(),
			Date:        dateStr,
			Year:        year,
			Month:       month,
			GrossAmount: grossUnit,
			NetAmount:   netUnit,
			Origin:      domain.OriginOrganic,
			Imported:    true,
			CreatedAt:   createdAt,
		})
	}

	return sales, nil
}

// parseAmount normaliza um valor monetário da planilha: aspas removidas,
// vírgula decimal vira ponto, e o resultado precisa ser um número >= 0
func parseAmount(raw string) (float64, error) {
	if raw == "" {
		return 0, fmt.Errorf("valor vazio")
	}

	cleaned := strings.NewReplacer(`"`, "", "'", "", ",", ".").Replace(raw)

	value, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || value < 0 {
		return 0, fmt.Errorf("valor inválido: %s", raw)
	}

	return value, nil
}
