// Package testimonial synthesizes display-ready social-proof records from a
// product's resolved personas. Nothing here is persisted; records are rebuilt
// on every render from the durable persona selection.
package testimonial

import (
	"fmt"
	"time"

	"glastor/domain/core"
	"glastor/domain/persona"
)

// Testimonial is a render-only review card. Ratings are fixed per slot and
// Verified is always true; these are synthetic suggestions, not user content.
type Testimonial struct {
	Name      string         `json:"name"`
	Role      string         `json:"role"`
	Rating    int            `json:"rating"`
	Comment   string         `json:"comment"`
	CreatedAt core.Timestamp `json:"created_at"`
	Verified  bool           `json:"verified"`
}

// FallbackProductName stands in when a product has no display name.
const FallbackProductName = "este producto"

// offsetCandidates spans "just now" through three months. Each product's four
// slots draw four distinct entries, seeded from the product hash, so the ages
// shown are stable per product but varied across the catalog.
var offsetCandidates = []time.Duration{
	0,
	2 * time.Minute, 10 * time.Minute, 30 * time.Minute,
	1 * time.Hour, 3 * time.Hour, 12 * time.Hour,
	24 * time.Hour, 48 * time.Hour, 96 * time.Hour,
	7 * 24 * time.Hour, 14 * 24 * time.Hour,
	30 * 24 * time.Hour, 60 * 24 * time.Hour, 90 * 24 * time.Hour,
}

// slot templates: ratings alternate 5,4,5,4 and each slot has one fixed
// comment referencing the product's display name.
var slotRatings = [persona.SlotCount]int{5, 4, 5, 4}

func slotComment(slot int, productName string) string {
	switch slot {
	case 0:
		return fmt.Sprintf("Impresionado con el rendimiento de %s. La potencia y el control superaron mis expectativas. Excelente para jornadas largas.", productName)
	case 1:
		return fmt.Sprintf("%s ofrece una relación calidad/precio muy buena. Corte/Perforación limpia y rápida. Solo mejoraría el peso.", productName)
	case 2:
		return fmt.Sprintf("Se nota la calidad en cada detalle de %s. Robusto, preciso y con acabados de primera. Recomendado para uso intensivo.", productName)
	default:
		return fmt.Sprintf("Instalación y ajuste sencillos. %s me ahorró tiempo en obra. Buen agarre y poca vibración.", productName)
	}
}

// Offsets returns the four per-slot ages for a seed, drawn without
// replacement from offsetCandidates.
func Offsets(seed persona.Seed) [persona.SlotCount]time.Duration {
	idx := persona.NewStream(seed).PickUnique(len(offsetCandidates), persona.SlotCount)
	var out [persona.SlotCount]time.Duration
	for i, j := range idx {
		out[i] = offsetCandidates[j]
	}
	return out
}

// Synthesize builds the four testimonial cards for a product from its
// resolved personas, in slot order.
func Synthesize(personas []persona.Persona, seed persona.Seed, productName string, now time.Time) []Testimonial {
	if productName == "" {
		productName = FallbackProductName
	}
	offsets := Offsets(seed)

	out := make([]Testimonial, 0, persona.SlotCount)
	for slot := 0; slot < persona.SlotCount && slot < len(personas); slot++ {
		p := personas[slot]
		out = append(out, Testimonial{
			Name:      p.Name,
			Role:      p.Role,
			Rating:    slotRatings[slot],
			Comment:   slotComment(slot, productName),
			CreatedAt: core.NewTimestamp(now.Add(-offsets[slot])),
			Verified:  true,
		})
	}
	return out
}
