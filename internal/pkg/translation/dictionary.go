package translation

import (
	"sort"
	"strings"
)

// Common procurement words, used when the translation API is unavailable.
var fallbackDictionary = map[string]string{
	// fr
	"Avis":                "Notice",
	"Contrat":             "Contract",
	"Projet":              "Project",
	"Fournisseur":         "Supplier",
	"Appel d'offres":      "Call for Tenders",
	"Marché":              "Contract",
	"Date limite":         "Deadline",
	"Pays":                "Country",
	"Fournitures":         "Supplies",
	"Fourniture":          "Supply",
	"Travaux":             "Works",
	"Date de publication": "Publication date",
	"Montant":             "Amount",
	"Réhabilitation":      "Rehabilitation",
	"Construction de":     "Construction of",
	"Acquisition de":      "Procurement of",
	// es
	"Aviso":                "Notice",
	"Contrato":             "Contract",
	"Proyecto":             "Project",
	"Proveedor":            "Supplier",
	"Licitación":           "Tender",
	"Fecha límite":         "Deadline",
	"Descripción":          "Description",
	"Servicios":            "Services",
	"Suministros":          "Supplies",
	"Suministro":           "Supply",
	"Obras":                "Works",
	"Fecha de publicación": "Publication date",
	"Importe":              "Amount",
	"Adquisición de":       "Procurement of",
	// de
	"Bekanntmachung":         "Notice",
	"Vertrag":                "Contract",
	"Projekt":                "Project",
	"Lieferant":              "Supplier",
	"Ausschreibung":          "Tender",
	"Frist":                  "Deadline",
	"Beschreibung":           "Description",
	"Dienstleistungen":       "Services",
	"Lieferungen":            "Supplies",
	"Bauarbeiten":            "Construction works",
	"Veröffentlichungsdatum": "Publication date",
	"Betrag":                 "Amount",
	// pt
	"Projeto":            "Project",
	"Fornecedor":         "Supplier",
	"Concurso":           "Tender",
	"Prazo":              "Deadline",
	"Descrição":          "Description",
	"Serviços":           "Services",
	"Fornecimentos":      "Supplies",
	"Data de publicação": "Publication date",
	"Montante":           "Amount",
	// it
	"Avviso":                "Notice",
	"Contratto":             "Contract",
	"Progetto":              "Project",
	"Fornitore":             "Supplier",
	"Gara d'appalto":        "Tender",
	"Scadenza":              "Deadline",
	"Descrizione":           "Description",
	"Servizi":               "Services",
	"Forniture":             "Supplies",
	"Lavori":                "Works",
	"Data di pubblicazione": "Publication date",
	"Importo":               "Amount",
}

var dictionaryReplacer = buildReplacer(fallbackDictionary)

// buildReplacer orders the pairs longest first so multi-word phrases win over their parts.
func buildReplacer(dict map[string]string) *strings.Replacer {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})

	pairs := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		pairs = append(pairs, k, dict[k])
	}
	return strings.NewReplacer(pairs...)
}

// applyDictionary returns the word-replaced text and whether anything changed.
func applyDictionary(text string) (string, bool) {
	out := dictionaryReplacer.Replace(text)
	return out, out != text
}
