package service

import (
	"bytes"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"

	"github.com/harukit/recipelog/backend/internal/models"
)

// Theme colors shared with the frontend.
var (
	pdfPrimaryColor = [3]int{230, 126, 34} // #E67E22
	pdfAccentColor  = [3]int{253, 235, 208} // #FDEBD0
	pdfTextColor    = [3]int{44, 62, 80}   // #2C3E50
)

// PDFService renders a saved recipe as a printable A4 document.
type PDFService struct {
	fontFamily string
	fontPath   string
}

// NewPDFService creates a new PDFService instance. RECIPE_PDF_FONT may name a
// UTF-8 TTF file for non-Latin recipe text; without it the built-in Helvetica
// is used.
func NewPDFService() *PDFService {
	s := &PDFService{fontFamily: "Helvetica"}
	if fontPath := os.Getenv("RECIPE_PDF_FONT"); fontPath != "" {
		if _, err := os.Stat(fontPath); err == nil {
			s.fontFamily = "RecipeFont"
			s.fontPath = fontPath
		}
	}
	return s
}

// RenderRecipe builds the PDF document for the given recipe and returns its
// bytes.
func (s *PDFService) RenderRecipe(recipe *models.Recipe) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(20, 20, 20)
	pdf.SetAutoPageBreak(true, 25)
	if s.fontPath != "" {
		pdf.AddUTF8Font(s.fontFamily, "", s.fontPath)
		pdf.AddUTF8Font(s.fontFamily, "B", s.fontPath)
	}
	pdf.AddPage()

	// Title
	pdf.SetFont(s.fontFamily, "B", 24)
	pdf.SetTextColor(pdfPrimaryColor[0], pdfPrimaryColor[1], pdfPrimaryColor[2])
	pdf.MultiCell(0, 12, recipe.Title, "", "C", false)
	pdf.Ln(2)

	pdf.SetFont(s.fontFamily, "", 12)
	pdf.SetTextColor(pdfTextColor[0], pdfTextColor[1], pdfTextColor[2])
	pdf.CellFormat(0, 8, fmt.Sprintf("Cooking time: %s", recipe.CookingTime), "", 1, "C", false, 0, "")
	pdf.Ln(4)

	// User memo, boxed and tinted
	if recipe.Memo != "" {
		s.heading(pdf, "Message")
		pdf.SetFont(s.fontFamily, "", 12)
		pdf.SetTextColor(pdfTextColor[0], pdfTextColor[1], pdfTextColor[2])
		pdf.SetFillColor(pdfAccentColor[0], pdfAccentColor[1], pdfAccentColor[2])
		pdf.MultiCell(0, 8, recipe.Memo, "1", "L", true)
		pdf.Ln(4)
	}

	// Ingredients table
	s.heading(pdf, "Ingredients")
	pdf.SetFont(s.fontFamily, "", 11)
	pdf.SetTextColor(pdfTextColor[0], pdfTextColor[1], pdfTextColor[2])
	pdf.SetDrawColor(211, 211, 211)
	for _, ing := range recipe.Ingredients {
		pdf.CellFormat(110, 8, ing.Name, "B", 0, "L", false, 0, "")
		pdf.CellFormat(60, 8, ing.Amount, "B", 1, "R", false, 0, "")
	}
	pdf.Ln(2)

	if len(recipe.Preparation) > 0 {
		s.heading(pdf, "Preparation (Mise en place)")
		pdf.SetFont(s.fontFamily, "", 11)
		pdf.SetTextColor(pdfTextColor[0], pdfTextColor[1], pdfTextColor[2])
		for i, prep := range recipe.Preparation {
			pdf.MultiCell(0, 7, fmt.Sprintf("%d. %s", i+1, prep), "", "L", false)
		}
		pdf.Ln(2)
	}

	s.heading(pdf, "Steps")
	pdf.SetFont(s.fontFamily, "", 11)
	pdf.SetTextColor(pdfTextColor[0], pdfTextColor[1], pdfTextColor[2])
	for i, step := range recipe.Steps {
		pdf.MultiCell(0, 7, fmt.Sprintf("Step %d: %s", i+1, step), "", "L", false)
	}

	if recipe.ChefComment != "" {
		pdf.Ln(2)
		s.heading(pdf, "Chef's advice")
		pdf.SetFont(s.fontFamily, "", 11)
		pdf.SetTextColor(pdfTextColor[0], pdfTextColor[1], pdfTextColor[2])
		pdf.MultiCell(0, 7, recipe.ChefComment, "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render recipe PDF: %w", err)
	}
	return buf.Bytes(), nil
}

func (s *PDFService) heading(pdf *fpdf.Fpdf, text string) {
	pdf.SetFont(s.fontFamily, "B", 16)
	pdf.SetTextColor(pdfPrimaryColor[0], pdfPrimaryColor[1], pdfPrimaryColor[2])
	pdf.CellFormat(0, 10, text, "", 1, "L", false, 0, "")
}
