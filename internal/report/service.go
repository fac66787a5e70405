package report

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"rideinfo-api/internal/driver"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

var ErrUnsupportedFormat = errors.New("format must be xlsx or csv")

var rosterColumns = []string{
	"name", "bus_number", "contact_number", "email", "license_number",
	"blood_group", "joining_date", "status",
}

type ReportService struct {
	DB *gorm.DB
}

// RosterExport builds a downloadable driver roster, optionally scoped to
// one institute. With no matching drivers the file still carries the
// header row.
func (s *ReportService) RosterExport(instituteID, format string) (contentType, filename string, out []byte, err error) {
	if format == "" {
		format = "xlsx"
	}
	if format != "xlsx" && format != "csv" {
		return "", "", nil, ErrUnsupportedFormat
	}

	query := s.DB.Order("created_at DESC")
	if instituteID != "" {
		query = query.Where("institute_id = ?", instituteID)
	}

	var drivers []driver.Driver
	if err := query.Find(&drivers).Error; err != nil {
		return "", "", nil, err
	}

	ts := time.Now().Format("20060102_150405")
	if format == "csv" {
		b, err := buildCSV(drivers)
		if err != nil {
			return "", "", nil, err
		}
		return "text/csv; charset=utf-8", fmt.Sprintf("drivers_%s.csv", ts), b, nil
	}

	b, err := buildXLSX(drivers)
	if err != nil {
		return "", "", nil, err
	}
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("drivers_%s.xlsx", ts), b, nil
}

func rosterRow(d driver.Driver) []string {
	return []string{
		d.Name, d.BusNumber, d.ContactNumber, d.Email, d.LicenseNumber,
		d.BloodGroup, d.JoiningDate, d.Status,
	}
}

func buildCSV(drivers []driver.Driver) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	if err := w.Write(rosterColumns); err != nil {
		return nil, err
	}
	for _, d := range drivers {
		if err := w.Write(rosterRow(d)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func buildXLSX(drivers []driver.Driver) ([]byte, error) {
	f := excelize.NewFile()
	f.SetSheetName("Sheet1", "Drivers")

	header := make([]interface{}, len(rosterColumns))
	for i, col := range rosterColumns {
		header[i] = col
	}
	if err := f.SetSheetRow("Drivers", "A1", &header); err != nil {
		return nil, err
	}

	for i, d := range drivers {
		row := rosterRow(d)
		cells := make([]interface{}, len(row))
		for j, v := range row {
			cells[j] = v
		}
		cell := "A" + strconv.Itoa(i+2)
		if err := f.SetSheetRow("Drivers", cell, &cells); err != nil {
			return nil, err
		}
	}

	b, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
