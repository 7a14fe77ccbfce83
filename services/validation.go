package services

import (
	"fmt"
	"regexp"
	"strings"
)

// nitNumberPatterns are the accepted statutory NIT reference formats.
var nitNumberPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+/\d{4}-\d{2}$`), // 27/2024-25
	regexp.MustCompile(`^\d+/\d{4}$`),       // 27/2024
	regexp.MustCompile(`^NIT-\d+/\d{4}$`),   // NIT-27/2024
	regexp.MustCompile(`^\d+-\d{4}$`),       // 27-2024
	regexp.MustCompile(`^[A-Z]+\d+/\d{4}$`), // PWD27/2024
}

// ValidateNITNumber reports whether the NIT reference matches one of the
// accepted statutory formats.
func ValidateNITNumber(nit string) bool {
	nit = strings.TrimSpace(nit)
	if nit == "" {
		return false
	}
	for _, re := range nitNumberPatterns {
		if re.MatchString(nit) {
			return true
		}
	}
	return false
}

// ValidatePercentage checks a bid deviation against the accepted range.
// Bids below -50% or above +100% of estimate are treated as entry errors.
func ValidatePercentage(pct float64) bool {
	return pct >= -50 && pct <= 100
}

// ValidateWorkName requires a minimally meaningful description: at least 10
// characters and at least 3 words.
func ValidateWorkName(name string) bool {
	cleaned := strings.TrimSpace(name)
	if len(cleaned) < 10 {
		return false
	}
	return len(strings.Fields(cleaned)) >= 3
}

// TenderValidation is the outcome of validating one record. Errors block
// document generation; warnings are shown but do not.
type TenderValidation struct {
	Valid    bool     `json:"valid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// ValidateTender checks a normalized record for completeness and statutory
// plausibility. It validates; it does not mutate.
func ValidateTender(rec TenderRecord) TenderValidation {
	var v TenderValidation

	if !ValidateNITNumber(rec.NITNumber) {
		v.Errors = append(v.Errors, fmt.Sprintf("NIT number %q does not match any accepted format", rec.NITNumber))
	}
	if !ValidateWorkName(rec.WorkName) {
		v.Errors = append(v.Errors, "work name must be at least 10 characters and 3 words")
	}
	if rec.EstimatedCost <= 0 {
		v.Errors = append(v.Errors, "estimated cost must be positive")
	}
	if rec.EarnestMoney < 0 {
		v.Errors = append(v.Errors, "earnest money cannot be negative")
	}
	if rec.TimeOfCompletion <= 0 {
		v.Errors = append(v.Errors, "time of completion must be a positive number of months")
	}

	// Earnest money is conventionally 0.5–10% of the estimate; anything
	// outside that is flagged but allowed.
	if rec.EstimatedCost > 0 && rec.EarnestMoney > 0 {
		pct := rec.EarnestMoney / rec.EstimatedCost * 100
		if pct < 0.5 || pct > 10 {
			v.Warnings = append(v.Warnings, fmt.Sprintf("earnest money is %.2f%% of estimated cost (typical range is 0.5%%-10%%)", pct))
		}
	}

	for i, b := range rec.Bidders {
		if strings.TrimSpace(b.Name) == "" {
			v.Errors = append(v.Errors, fmt.Sprintf("bidder %d: name is required", i+1))
		}
		if !ValidatePercentage(b.Percentage) {
			v.Errors = append(v.Errors, fmt.Sprintf("bidder %d: percentage %.2f is outside the accepted range [-50, 100]", i+1, b.Percentage))
		}
		if b.BidAmount < 0 {
			v.Errors = append(v.Errors, fmt.Sprintf("bidder %d: bid amount cannot be negative", i+1))
		}
	}

	if len(rec.Bidders) == 0 {
		v.Warnings = append(v.Warnings, "no bidders recorded; generated documents will have an empty bidder table")
	}

	v.Valid = len(v.Errors) == 0
	return v
}

// SanitizeFilename makes a work or NIT reference safe to use as a download
// filename.
func SanitizeFilename(name string) string {
	if name == "" {
		return "untitled"
	}
	sanitized := strings.Map(func(r rune) rune {
		if strings.ContainsRune(`<>:"/\|?*`, r) {
			return '_'
		}
		return r
	}, name)
	sanitized = strings.Trim(sanitized, ". ")
	if sanitized == "" {
		return "untitled"
	}
	if len(sanitized) > 200 {
		sanitized = sanitized[:200]
	}
	return sanitized
}
