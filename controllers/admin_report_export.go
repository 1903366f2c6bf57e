package controllers

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/dawit-alemu/tripstay/utils"
	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

// DownloadBookingsReportExcel exports the bookings report as an Excel
// workbook. Admin only.
func DownloadBookingsReportExcel(c *gin.Context) {
	utils.LogInfo("DownloadBookingsReportExcel called")

	period := c.DefaultQuery("period", "day")
	bookings, summary, err := buildBookingsReport(period)
	if err != nil {
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.LogError("Failed to build bookings report: %v", err)
		utils.InternalServerError(c, "Failed to build report", nil)
		return
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Bookings Report")
	if err != nil {
		utils.LogError("Failed to create report sheet: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}

	header := sheet.AddRow()
	for _, title := range []string{"Booking ID", "User", "Listing", "Check-in", "Check-out", "Guests", "Total", "Status", "Created"} {
		cell := header.AddCell()
		cell.Value = title
	}

	for _, booking := range bookings {
		row := sheet.AddRow()
		row.AddCell().Value = strconv.Itoa(int(booking.ID))
		row.AddCell().Value = booking.User.Username
		row.AddCell().Value = booking.Listing.Title
		row.AddCell().Value = booking.CheckInDate.Format("2006-01-02")
		row.AddCell().Value = booking.CheckOutDate.Format("2006-01-02")
		row.AddCell().Value = strconv.Itoa(booking.NumberOfGuests)
		row.AddCell().Value = fmt.Sprintf("%.2f", booking.TotalPrice)
		row.AddCell().Value = booking.Status
		row.AddCell().Value = booking.CreatedAt.Format("2006-01-02 15:04:05")
	}

	sheet.AddRow()
	summaryRows := [][2]string{
		{"Total bookings", strconv.Itoa(summary.TotalBookings)},
		{"Total revenue", fmt.Sprintf("%.2f", summary.TotalRevenue)},
		{"Total guests", strconv.Itoa(summary.TotalGuests)},
		{"Unique users", strconv.Itoa(summary.UniqueUsers)},
		{"Cancelled", strconv.Itoa(summary.Cancelled)},
	}
	for _, pair := range summaryRows {
		row := sheet.AddRow()
		row.AddCell().Value = pair[0]
		row.AddCell().Value = pair[1]
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write report workbook: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}
	utils.LogInfo("Bookings report exported for period %q (%d rows)", period, len(bookings))

	c.Header("Content-Disposition", "attachment; filename=bookings-report.xlsx")
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
