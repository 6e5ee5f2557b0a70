package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"inventory-system/internal/dto"
	"inventory-system/internal/services"
	"inventory-system/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
	logger        *zap.Logger
}

func NewReportController(reportService services.ReportServiceInterface, logger *zap.Logger) *ReportController {
	return &ReportController{reportService: reportService, logger: logger}
}

// GetAssignmentReport отдает отчет по закреплениям. По умолчанию JSON,
// при format=xlsx выгружается файл.
func (c *ReportController) GetAssignmentReport(ctx echo.Context) error {
	reqCtx := ctx.Request().Context()

	format := strings.ToLower(ctx.QueryParam("format"))

	data, err := c.reportService.GetAssignmentReport(reqCtx)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if format == "xlsx" {
		return c.respondWithXLSX(ctx, data)
	}

	return utils.SuccessResponse(ctx, data, "Отчет успешно сформирован", http.StatusOK)
}

var reportHeaders = []string{
	"№", "Оборудование", "Категория", "Сотрудник", "Дата закрепления", "Дата возврата", "Статус", "Примечания",
}

func rowToSlice(index int, item dto.EnrichedAssignmentDTO) []interface{} {
	returnDate := "-"
	if item.ReturnDate.Valid && item.ReturnDate.String != "" {
		returnDate = formatReportDate(item.ReturnDate.String)
	}

	return []interface{}{
		index, item.EquipmentName, item.EquipmentCategory, item.StaffName,
		formatReportDate(item.AssignedDate), returnDate, item.Status, item.Notes,
	}
}

// formatReportDate переводит дату из хранилища в привычный для отчета
// вид; нераспознанная строка уходит в ячейку как есть.
func formatReportDate(raw string) string {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.Format("02.01.2006 15:04")
	}
	if t, err := time.Parse("2006-01-02", raw); err == nil {
		return t.Format("02.01.2006")
	}
	return raw
}

func (c *ReportController) respondWithXLSX(ctx echo.Context, data []dto.EnrichedAssignmentDTO) error {
	f := excelize.NewFile()
	sheet := "Отчет по закреплениям"
	f.SetSheetName("Sheet1", sheet)
	f.SetSheetRow(sheet, "A1", &reportHeaders)
	style, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	f.SetCellStyle(sheet, "A1", "H1", style)

	for i, item := range data {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := rowToSlice(i+1, item)
		f.SetSheetRow(sheet, cell, &row)
	}
	f.SetColWidth(sheet, "B", "B", 30)
	f.SetColWidth(sheet, "C", "D", 25)
	f.SetColWidth(sheet, "E", "F", 20)
	f.SetColWidth(sheet, "H", "H", 40)

	fileName := fmt.Sprintf("assignments_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set(echo.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	ctx.Response().WriteHeader(http.StatusOK)
	return f.Write(ctx.Response().Writer)
}
