package extract

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

type Money struct {
	Amount   decimal.Decimal
	Currency string
}

var (
	minTenderValue = decimal.NewFromInt(100)
	maxTenderValue = decimal.New(1, 12)
)

var currencyCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {}, "AUD": {}, "CAD": {}, "CNY": {},
	"INR": {}, "BRL": {}, "ZAR": {}, "RUB": {}, "XOF": {}, "XAF": {}, "NGN": {}, "KES": {},
	"EGP": {}, "MAD": {}, "TND": {}, "GHS": {}, "UGX": {}, "TZS": {}, "ETB": {}, "RWF": {},
	"MZN": {}, "ZMW": {}, "MWK": {}, "BDT": {}, "PKR": {}, "LKR": {}, "NPR": {}, "IDR": {},
	"PHP": {}, "VND": {}, "THB": {}, "MYR": {}, "KZT": {}, "UZS": {}, "MNT": {}, "MXN": {},
	"COP": {}, "PEN": {}, "CLP": {}, "ARS": {}, "BOB": {}, "PYG": {}, "UYU": {}, "GTQ": {},
	"HNL": {}, "DOP": {}, "SEK": {}, "NOK": {}, "DKK": {}, "PLN": {}, "CZK": {}, "HUF": {},
	"RON": {}, "BGN": {}, "TRY": {}, "UAH": {}, "SAR": {}, "AED": {}, "KWD": {}, "QAR": {},
	"XDR": {}, "KRW": {},
}

var currencyAliases = map[string]string{
	"US$": "USD", "US DOLLARS": "USD", "US DOLLAR": "USD", "DOLLARS": "USD", "DOLLAR": "USD",
	"EURO": "EUR", "EUROS": "EUR",
	"POUNDS": "GBP", "STERLING": "GBP",
	"YEN": "JPY", "RMB": "CNY", "YUAN": "CNY",
	"RUPEES": "INR", "RS": "INR",
	"FCFA": "XOF", "CFA": "XOF", "F CFA": "XOF",
	"NAIRA": "NGN", "RAND": "ZAR", "DIRHAMS": "MAD",
	// AfDB unit of account, pegged to the SDR
	"UA": "XDR", "UC": "XDR", "UNITS OF ACCOUNT": "XDR", "UNIT OF ACCOUNT": "XDR", "SDR": "XDR",
}

var currencySymbols = map[string]string{
	"$": "USD", "€": "EUR", "£": "GBP", "¥": "JPY", "₹": "INR", "₦": "NGN", "₩": "KRW", "₽": "RUB",
}

const (
	numPattern  = `(\d{1,3}(?:[ ,.'\x{00a0}]\d{3})+(?:[.,]\d+)?|\d+(?:[.,]\d+)?)`
	magPattern  = `(?:\s*(million|mn|billion|bn|trillion|thousand)\b)?`
	codePattern = `(USD|EUR|GBP|JPY|CHF|AUD|CAD|CNY|INR|BRL|ZAR|XOF|XAF|NGN|KES|EGP|MAD|TND|GHS|UGX|TZS|ETB|RWF|MZN|ZMW|BDT|PKR|IDR|PHP|VND|MXN|COP|PEN|ARS|FCFA|CFA|EUROS?|US\$)`
)

var (
	estimatedValueRe = regexp.MustCompile(`(?i)(?:estimated (?:contract )?(?:value|cost|amount|budget)|total (?:value|budget|cost)|contract (?:value|amount)|budget|montant estim[ée])\s*(?:of|is|:|=)?\s*(?:approximately|approx\.?|about|around)?\s*` + codeOrSymbol + `?\s*` + numPattern + magPattern + `\s*` + codePatternOpt)
	symbolAmountRe   = regexp.MustCompile(`(?i)([$€£¥₹₦]|US\$)\s*` + numPattern + magPattern)
	codeBeforeRe     = regexp.MustCompile(`(?i)\b` + codePattern + `\s*` + numPattern + magPattern)
	codeAfterRe      = regexp.MustCompile(`(?i)` + numPattern + magPattern + `\s*` + codePattern + `\b`)
	bareMagnitudeRe  = regexp.MustCompile(`(?i)` + numPattern + `\s*(million|billion|trillion)\b`)
)

const (
	codeOrSymbol   = `(USD|EUR|GBP|XOF|XAF|US\$|[$€£¥₹₦])`
	codePatternOpt = `(USD|EUR|GBP|XOF|XAF|FCFA)?`
)

// ExtractMoney scans text for the first confident amount. Patterns are tried from most to
// least specific; bare amounts with a magnitude default to USD.
func ExtractMoney(text string) (Money, bool) {
	if strings.TrimSpace(text) == "" {
		return Money{}, false
	}
	text = strings.ReplaceAll(text, "\u00a0", " ")

	if m := estimatedValueRe.FindStringSubmatch(text); m != nil {
		cur := firstNonBlank(m[1], m[4])
		if money, ok := buildMoney(m[2], m[3], cur, "USD"); ok {
			return money, true
		}
	}

	if m := symbolAmountRe.FindStringSubmatch(text); m != nil {
		if money, ok := buildMoney(m[2], m[3], m[1], ""); ok {
			return money, true
		}
	}

	if m := codeBeforeRe.FindStringSubmatch(text); m != nil {
		if money, ok := buildMoney(m[2], m[3], m[1], ""); ok {
			return money, true
		}
	}

	if m := codeAfterRe.FindStringSubmatch(text); m != nil {
		if money, ok := buildMoney(m[1], m[2], m[3], ""); ok {
			return money, true
		}
	}

	if m := bareMagnitudeRe.FindStringSubmatch(text); m != nil {
		if money, ok := buildMoney(m[1], m[2], "", "USD"); ok {
			return money, true
		}
	}

	return Money{}, false
}

// ParseMoney reads a structured amount column (e.g. "1,250,000.00") with its currency column.
func ParseMoney(amount, currency string) (Money, bool) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return Money{}, false
	}

	if m := bareNumberWithMagRe.FindStringSubmatch(amount); m != nil {
		cur := currency
		if cur == "" {
			cur = m[1]
		}
		return buildMoney(m[2], m[3], cur, "")
	}

	// "USD 1,200,000" or "€ 5 000"
	return ExtractMoney(amount + " " + currency)
}

var bareNumberWithMagRe = regexp.MustCompile(`(?i)^\s*` + codeOrSymbol + `?\s*` + numPattern + magPattern + `\s*$`)

func buildMoney(num, mag, cur, defaultCur string) (Money, bool) {
	amount, ok := ParseAmount(num, mag != "")
	if !ok {
		return Money{}, false
	}

	switch strings.ToLower(mag) {
	case "thousand":
		amount = amount.Mul(decimal.NewFromInt(1_000))
	case "million", "mn":
		amount = amount.Mul(decimal.NewFromInt(1_000_000))
	case "billion", "bn":
		amount = amount.Mul(decimal.NewFromInt(1_000_000_000))
	case "trillion":
		amount = amount.Mul(decimal.New(1, 12))
	}

	code := ""
	if cur != "" {
		code, _ = NormalizeCurrency(cur)
	}
	if code == "" {
		code = defaultCur
	}

	if amount.LessThan(minTenderValue) || amount.GreaterThan(maxTenderValue) {
		return Money{}, false
	}

	return Money{Amount: amount.Round(2), Currency: code}, true
}

// ParseAmount normalizes grouping and decimal separators: "1.234,56" and "1,234.56" both
// read as 1234.56. hasMagnitude makes a lone separator decimal ("1.5 million").
func ParseAmount(token string, hasMagnitude bool) (decimal.Decimal, bool) {
	t := strings.NewReplacer(" ", "", "'", "", "\u00a0", "").Replace(strings.TrimSpace(token))
	if t == "" {
		return decimal.Zero, false
	}

	lastComma := strings.LastIndexByte(t, ',')
	lastDot := strings.LastIndexByte(t, '.')

	switch {
	case lastComma >= 0 && lastDot >= 0:
		if lastComma > lastDot {
			t = strings.ReplaceAll(t, ".", "")
			t = strings.Replace(t, ",", ".", 1)
		} else {
			t = strings.ReplaceAll(t, ",", "")
		}
	case lastComma >= 0:
		t = resolveSingleSeparator(t, ",", hasMagnitude)
	case lastDot >= 0:
		t = resolveSingleSeparator(t, ".", hasMagnitude)
	}

	d, err := decimal.NewFromString(t)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

func resolveSingleSeparator(t, sep string, hasMagnitude bool) string {
	parts := strings.Split(t, sep)
	if len(parts) > 2 {
		return strings.Join(parts, "")
	}

	// one separator: three trailing digits means grouping unless a magnitude follows
	if len(parts[1]) == 3 && !hasMagnitude {
		return parts[0] + parts[1]
	}
	return parts[0] + "." + parts[1]
}

// NormalizeCurrency maps a symbol, alias or ISO code to an ISO-like code.
func NormalizeCurrency(raw string) (string, bool) {
	s := strings.ToUpper(collapseSpaces(raw))
	if s == "" {
		return "", false
	}
	if code, ok := currencySymbols[s]; ok {
		return code, true
	}
	if code, ok := currencyAliases[s]; ok {
		return code, true
	}
	if _, ok := currencyCodes[s]; ok {
		return s, true
	}
	return "", false
}

func firstNonBlank(vals ...string) string {
	for _, v := range vals {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
