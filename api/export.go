package api

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"fintrack/database"
	"fintrack/models"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// ExportHandler 导出处理器
type ExportHandler struct{}

// NewExportHandler 创建导出处理器
func NewExportHandler() *ExportHandler {
	return &ExportHandler{}
}

// exportRow 导出行（交易附带类别名称）
type exportRow struct {
	models.Transaction
	CategoryName string
}

// queryExportRows 按邮箱与可选时间范围查询导出数据
func queryExportRows(c *gin.Context) (*models.User, []exportRow, bool) {
	user, err := findUserByEmail(c.Param("email"))
	if err != nil {
		NotFound(c, "用户不存在")
		return nil, nil, false
	}

	query := database.DB.Model(&models.Transaction{}).
		Select("transactions.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = transactions.category_id").
		Where("transactions.user_id = ?", user.ID)

	if startStr := c.Query("start_date"); startStr != "" {
		start, err := time.ParseInLocation("2006-01-02", startStr, time.Local)
		if err != nil {
			BadRequest(c, "开始时间格式错误，应为: 2006-01-02")
			return nil, nil, false
		}
		query = query.Where("transactions.date >= ?", start)
	}
	if endStr := c.Query("end_date"); endStr != "" {
		end, err := time.ParseInLocation("2006-01-02", endStr, time.Local)
		if err != nil {
			BadRequest(c, "结束时间格式错误，应为: 2006-01-02")
			return nil, nil, false
		}
		query = query.Where("transactions.date <= ?", end.Add(24*time.Hour-time.Second))
	}

	var rows []exportRow
	if err := query.Order("transactions.date DESC").Scan(&rows).Error; err != nil {
		InternalError(c, SafeErrorMessage(err, "查询数据失败"))
		return nil, nil, false
	}
	return user, rows, true
}

// ExportCSV 导出交易记录为 CSV
// @Summary 导出交易记录为 CSV
// @Description 导出指定用户的交易记录，可选 start_date/end_date 限定时间范围
// @Tags 导出
// @Produce text/csv
// @Param email path string true "用户邮箱"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "CSV 文件"
// @Failure 400 {object} Response "时间格式错误"
// @Failure 404 {object} Response "用户不存在"
// @Router /export/csv/{email} [get]
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	_, rows, ok := queryExportRows(c)
	if !ok {
		return
	}

	buf := new(bytes.Buffer)
	// 添加 BOM 以支持 Excel 中文显示
	buf.WriteString("\xEF\xBB\xBF")

	writer := csv.NewWriter(buf)

	headers := []string{"ID", "类型", "金额", "类别", "支付方式", "日期", "备注"}
	if err := writer.Write(headers); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	for _, row := range rows {
		record := []string{
			fmt.Sprintf("%d", row.ID),
			row.Type,
			fmt.Sprintf("%.2f", row.Amount),
			row.CategoryName,
			row.PaymentMode,
			row.Date.Format("2006-01-02"),
			row.Note,
		}
		if err := writer.Write(record); err != nil {
			InternalError(c, "生成 CSV 失败")
			return
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		InternalError(c, "生成 CSV 失败")
		return
	}

	filename := fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Length", fmt.Sprintf("%d", buf.Len()))

	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ExportExcel 导出交易记录为 Excel
// @Summary 导出交易记录为 Excel
// @Description 导出指定用户的交易记录为 xlsx，含收支汇总行
// @Tags 导出
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param email path string true "用户邮箱"
// @Param start_date query string false "开始日期 (2024-01-01)"
// @Param end_date query string false "结束日期 (2024-12-31)"
// @Success 200 {file} file "Excel 文件"
// @Failure 400 {object} Response "时间格式错误"
// @Failure 404 {object} Response "用户不存在"
// @Router /export/excel/{email} [get]
func (h *ExportHandler) ExportExcel(c *gin.Context) {
	_, rows, ok := queryExportRows(c)
	if !ok {
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "交易记录"
	f.SetSheetName("Sheet1", sheetName)

	// 表头样式
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 12, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"4F81BD"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	// 数据样式
	dataStyle, _ := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetColWidth(sheetName, "A", "A", 10)
	f.SetColWidth(sheetName, "B", "B", 10)
	f.SetColWidth(sheetName, "C", "C", 12)
	f.SetColWidth(sheetName, "D", "D", 15)
	f.SetColWidth(sheetName, "E", "E", 12)
	f.SetColWidth(sheetName, "F", "F", 15)
	f.SetColWidth(sheetName, "G", "G", 30)

	headers := []string{"ID", "类型", "金额", "类别", "支付方式", "日期", "备注"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	var totalIncome, totalExpense float64
	for i, row := range rows {
		excelRow := i + 2
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", excelRow), row.ID)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", excelRow), row.Type)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", excelRow), row.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", excelRow), row.CategoryName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", excelRow), row.PaymentMode)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", excelRow), row.Date.Format("2006-01-02"))
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", excelRow), row.Note)
		f.SetCellStyle(sheetName, fmt.Sprintf("A%d", excelRow), fmt.Sprintf("G%d", excelRow), dataStyle)

		if row.Type == models.TypeIncome {
			totalIncome += row.Amount
		} else {
			totalExpense += row.Amount
		}
	}

	// 汇总行
	summaryRow := len(rows) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"FFC000"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})

	f.SetCellValue(sheetName, fmt.Sprintf("A%d", summaryRow), "合计")
	f.MergeCell(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("B%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("收入 %.2f / 支出 %.2f", totalIncome, totalExpense))
	f.MergeCell(sheetName, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("E%d", summaryRow))
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("共 %d 条记录", len(rows)))
	f.MergeCell(sheetName, fmt.Sprintf("F%d", summaryRow), fmt.Sprintf("G%d", summaryRow))
	f.SetCellStyle(sheetName, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("G%d", summaryRow), summaryStyle)

	filename := fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename*=UTF-8''%s", filename))

	if err := f.Write(c.Writer); err != nil {
		InternalError(c, "生成 Excel 失败")
		return
	}
}
