package stats

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"sahabat3t-backend/internal/global/database"
	"sahabat3t-backend/internal/global/response"
	"sahabat3t-backend/internal/model"
	"sahabat3t-backend/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

type proposalRow struct {
	ID           uint   `excel:"ID"`
	Title        string `excel:"Judul"`
	SchoolName   string `excel:"Sekolah"`
	NPSN         string `excel:"NPSN"`
	Region       string `excel:"Wilayah"`
	Status       string `excel:"Status"`
	TargetAmount int64  `excel:"Target Dana"`
	CreatedAt    string `excel:"Dibuat"`
}

type reportRow struct {
	ID              uint   `excel:"ID"`
	ProposalID      uint   `excel:"ID Proposal"`
	Title           string `excel:"Judul"`
	Recipient       string `excel:"Penerima"`
	Amount          int64  `excel:"Jumlah"`
	Status          string `excel:"Status"`
	TransactionDate string `excel:"Tanggal Transaksi"`
}

// ExportProposals downloads every proposal as an xlsx workbook.
func ExportProposals(c *gin.Context) {
	var proposals []model.Proposal
	if err := database.DB.Order("created_at ASC").Find(&proposals).Error; err != nil {
		log.Error("failed to load proposals for export", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]proposalRow, 0, len(proposals))
	for _, p := range proposals {
		rows = append(rows, proposalRow{
			ID:           p.ID,
			Title:        p.Title,
			SchoolName:   p.SchoolName,
			NPSN:         p.NPSN,
			Region:       p.Region,
			Status:       p.Status,
			TargetAmount: p.TargetAmount,
			CreatedAt:    p.CreatedAt.Format("2006-01-02"),
		})
	}

	sendWorkbook(c, "proposals", rows)
}

// ExportReports downloads every fund-usage report as an xlsx workbook.
func ExportReports(c *gin.Context) {
	var reports []model.Report
	if err := database.DB.Order("created_at ASC").Find(&reports).Error; err != nil {
		log.Error("failed to load reports for export", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := make([]reportRow, 0, len(reports))
	for _, r := range reports {
		rows = append(rows, reportRow{
			ID:              r.ID,
			ProposalID:      r.ProposalID,
			Title:           r.Title,
			Recipient:       r.Recipient,
			Amount:          r.Amount,
			Status:          r.Status,
			TransactionDate: time.UnixMilli(r.TransactionDate).Format("2006-01-02"),
		})
	}

	sendWorkbook(c, "reports", rows)
}

func sendWorkbook(c *gin.Context, name string, rows interface{}) {
	f := excelize.NewFile()
	defer f.Close()

	if err := tools.ExportToExcel(f, name, rows); err != nil {
		log.Error("failed to build workbook", "error", err, "name", name)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	f.DeleteSheet("Sheet1")

	filename := fmt.Sprintf("%s-%s.xlsx", name, time.Now().Format("20060102-150405"))
	path := filepath.Join(os.TempDir(), filename)
	if err := f.SaveAs(path); err != nil {
		log.Error("failed to save workbook", "error", err, "path", path)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	defer os.Remove(path)

	_ = tools.SendStoredFile(c, path, filename, tools.ExcelContentType)
}
