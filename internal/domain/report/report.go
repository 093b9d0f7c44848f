package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Lotaristo/Unfair-Telegram-Bot/internal/domain/model"
	"github.com/jung-kurt/gofpdf"
)

// GenerateScoreReport формирует PDF со сводной таблицей рекордов игроков
// и сохраняет его во временный файл. Возвращает путь к файлу.
func GenerateScoreReport(scores []model.PlayerScore) (string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Заголовок отчёта.
	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 10, "Quiz score report", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, time.Now().Format("2006-01-02 15:04:05"), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Шапка таблицы.
	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(60, 8, "Player ID", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Best score", "1", 1, "L", false, 0, "")

	// Строки с рекордами игроков.
	pdf.SetFont("Helvetica", "", 12)
	for _, s := range scores {
		pdf.CellFormat(60, 8, strconv.FormatInt(s.UserID, 10), "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, strconv.Itoa(s.BestScore), "1", 1, "L", false, 0, "")
	}
	if len(scores) == 0 {
		pdf.CellFormat(100, 8, "no players yet", "1", 1, "L", false, 0, "")
	}

	filename := filepath.Join(os.TempDir(), fmt.Sprintf("quiz_scores_%d.pdf", time.Now().Unix()))
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("failed to write PDF report: %w", err)
	}
	return filename, nil
}
