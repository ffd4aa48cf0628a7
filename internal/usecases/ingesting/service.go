package ingesting

import (
	"context"
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-forecast-api/infrastructure/repository"
	"github.com/vfg2006/sales-forecast-api/internal/domain"
	"github.com/vfg2006/sales-forecast-api/pkg/log"
	"github.com/vfg2006/sales-forecast-api/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// Colunas obrigatórias do upload, na ordem canônica da tabela products_sales.
var requiredColumns = []string{"Date", "Qty", "Price", "MRP"}

// ErrNoValidData indica que nenhuma linha válida sobreviveu à normalização
var ErrNoValidData = errors.New("nenhuma linha válida nos arquivos enviados")

// UploadedFile é um arquivo recebido no corpo multipart. O stream é
// consumido uma única vez, na ordem recebida.
type UploadedFile struct {
	Name    string
	Content io.Reader
}

type Ingester interface {
	// Ingest normaliza e persiste os arquivos enviados, retornando o
	// total de linhas salvas
	Ingest(ctx context.Context, files []UploadedFile) (int, error)
}

type Service struct {
	salesRepo repository.SalesRepository
}

func NewService(salesRepo repository.SalesRepository) Ingester {
	return &Service{
		salesRepo: salesRepo,
	}
}

// Ingest processa cada arquivo de forma independente. Arquivos de tipo não
// reconhecido, ilegíveis ou sem as colunas obrigatórias são pulados em
// silêncio: uploads costumam misturar planilhas não relacionadas, e o
// contrato é salvar o que for carregável e reportar a contagem.
func (s *Service) Ingest(ctx context.Context, files []UploadedFile) (int, error) {
	var total int

	for _, file := range files {
		records, err := readTable(file)
		if err != nil {
			log.ForContext(ctx).WithError(err).WithField("file", file.Name).Warn("Arquivo ignorado no ingest")
			continue
		}

		rows := normalize(records)
		if len(rows) == 0 {
			continue
		}

		inserted, err := s.salesRepo.BulkInsert(ctx, rows)
		if err != nil {
			return 0, errors.Wrapf(err, "erro ao salvar linhas do arquivo %s", file.Name)
		}

		total += inserted
	}

	if total == 0 {
		return 0, ErrNoValidData
	}

	return total, nil
}

// readTable materializa o arquivo como uma tabela de strings com a linha de
// cabeçalho na primeira posição. Sufixos desconhecidos retornam tabela vazia.
func readTable(file UploadedFile) ([][]string, error) {
	name := strings.ToLower(file.Name)

	switch {
	case strings.HasSuffix(name, ".csv"):
		reader := csv.NewReader(file.Content)
		reader.FieldsPerRecord = -1
		return reader.ReadAll()
	case strings.HasSuffix(name, ".xlsx"):
		return readWorkbook(file.Content)
	default:
		return nil, nil
	}
}

// readWorkbook lê a primeira aba da planilha.
func readWorkbook(r io.Reader) ([][]string, error) {
	workbook, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("planilha sem abas")
	}

	return workbook.GetRows(sheets[0])
}

// normalize projeta as colunas obrigatórias, coage os tipos com parsers
// tolerantes e descarta qualquer linha com nulo em Date/Price/MRP.
func normalize(records [][]string) []domain.SalesRow {
	if len(records) < 2 {
		return nil
	}

	index := columnIndex(records[0])
	if index == nil {
		return nil
	}

	rows := make([]domain.SalesRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row, ok := coerceRow(record, index)
		if !ok {
			continue
		}
		rows = append(rows, row)
	}

	return rows
}

// columnIndex mapeia o cabeçalho para a posição de cada coluna obrigatória.
// Colunas extras são ignoradas; qualquer obrigatória ausente invalida o
// arquivo inteiro.
func columnIndex(header []string) map[string]int {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil
		}
	}

	return index
}

func coerceRow(record []string, index map[string]int) (domain.SalesRow, bool) {
	get := func(name string) string {
		i := index[name]
		if i >= len(record) {
			return ""
		}
		return record[i]
	}

	date := utils.ParseDateLenient(get("Date"))
	price := utils.ParseIntLenient(get("Price"))
	mrp := utils.ParseFloatLenient(get("MRP"))
	if date == nil || price == nil || mrp == nil {
		return domain.SalesRow{}, false
	}

	// Qty ausente ou inválida vira 0 para preservar o sinal de venda zero
	var qty float64
	if v := utils.ParseFloatLenient(get("Qty")); v != nil {
		qty = *v
	}

	return domain.SalesRow{
		Date:  *date,
		Qty:   qty,
		Price: *price,
		MRP:   *mrp,
	}, true
}
