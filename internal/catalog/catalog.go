// Package catalog holds the fixed set of images the generator produces.
package catalog

import (
	"fmt"

	"example/room-image-gen/internal/model"
)

var entries = build()

// Entries returns the catalog in generation order. The slice is a copy.
func Entries() []model.Entry {
	out := make([]model.Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry with the given ID.
func Lookup(id string) (model.Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.Entry{}, false
}

// Select returns the entries named by ids, in catalog order. An empty ids
// selects everything.
func Select(ids []string) ([]model.Entry, error) {
	if len(ids) == 0 {
		return Entries(), nil
	}
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		if _, ok := Lookup(id); !ok {
			return nil, fmt.Errorf("unknown catalog entry %q", id)
		}
		want[id] = true
	}
	var out []model.Entry
	for _, e := range entries {
		if want[e.ID] {
			out = append(out, e)
		}
	}
	return out, nil
}

func style(name string) string {
	s, ok := Styles[name]
	if !ok {
		panic("catalog: unknown style " + name)
	}
	return s
}

func room(name string) string {
	r, ok := Rooms[name]
	if !ok {
		panic("catalog: unknown room " + name)
	}
	return r
}

func entry(id, scene string) model.Entry {
	return model.Entry{ID: id, Prompt: QualityPrefix + " " + scene}
}

func build() []model.Entry {
	return []model.Entry{
		// before: empty rooms
		entry("before-empty.jpg", "An empty, unfurnished living room photographed in the style of real estate photography. Bare white walls, light hardwood flooring, large windows letting in natural daylight, no furniture, no decorations. Clean, bright, spacious but empty. The room should look like a blank canvas waiting for design. Wide-angle lens, even lighting."),
		entry("before-bedroom.jpg", "An empty, unfurnished bedroom. Bare walls painted soft white, light wood or carpet flooring, one window with natural light streaming in. No furniture, no curtains, no decorations. Empty closet door visible. The room feels blank and uninspired, ready to be transformed. Wide-angle shot."),
		entry("before-kitchen.jpg", "An empty, basic kitchen with plain white cabinets, basic countertops, no decorations, no appliances on counters, generic fluorescent lighting. The kitchen looks functional but completely uninspired and lifeless. Beige walls. Wide-angle real estate style photo."),
		entry("before-study.jpg", "An empty, unfurnished home office or study room. Bare walls, basic flooring, one window. No desk, no shelves, no furniture. Just an empty room with natural light. Clean but completely bare and uninviting."),

		// hero
		entry("hero-showcase.jpg", fmt.Sprintf("A breathtaking modern luxury living room that showcases the pinnacle of AI-powered interior design. Floor-to-ceiling windows overlooking a city skyline at golden hour. %s. %s. The space should look absolutely stunning, like the cover of Architectural Digest. Dramatic natural lighting, perfect composition, ultra high detail on every texture and material.", style("modern"), room("Living Room"))),

		// after: styled transformations
		entry("after-modern.jpg", fmt.Sprintf("A beautifully designed modern minimalist living room. %s. %s. The room should feel warm, inviting, and magazine-worthy. Natural sunlight streams through large windows. Every detail is perfect - from the texture of fabrics to the grain of wood. Wide-angle architectural photography.", style("modern"), room("Living Room"))),
		entry("after-scandinavian.jpg", fmt.Sprintf("A stunning Scandinavian-style bedroom. %s. %s. Cozy hygge atmosphere with soft morning light filtering through sheer white curtains. The space feels serene, warm, and perfectly balanced. Professional interior photography.", style("scandinavian"), room("Bedroom"))),
		entry("after-industrial.jpg", fmt.Sprintf("A dramatic industrial-style loft kitchen. %s. %s. High ceilings with exposed ductwork, warm Edison lighting, and a mix of raw and refined materials. The space feels urban, sophisticated, and full of character. Moody atmospheric lighting.", style("industrial"), room("Kitchen"))),
		entry("after-japandi.jpg", fmt.Sprintf("A serene Japandi-style home office. %s. %s. The space combines Japanese zen with Scandinavian functionality. Natural materials, low profile furniture, muted earth tones. Peaceful, focused, and beautifully minimal. Soft diffused natural light.", style("japandi"), room("Office"))),

		// style gallery, featured cards
		entry("style-coastal.jpg", fmt.Sprintf("A dreamy coastal-style living room. %s. %s. Ocean visible through large windows. The room feels like a luxury beach house. Light, airy, and absolutely beautiful. Professional interior photography with warm afternoon light.", style("coastal"), room("Living Room"))),
		entry("style-artdeco.jpg", fmt.Sprintf("A glamorous Art Deco dining room. %s. %s. The room exudes 1920s luxury with modern comfort. Geometric patterns, gold accents, rich velvet. Evening lighting with warm glow from crystal chandelier. Gatsby-era opulence.", style("art-deco"), room("Dining Room"))),
		entry("style-midcentury.jpg", fmt.Sprintf("A stylish mid-century modern living room. %s. %s. Iconic 1950s-60s furniture pieces, organic shapes, warm wood tones. The space feels retro yet timeless. Warm afternoon light through large windows. Professional design photography.", style("mid-century"), room("Living Room"))),
		entry("style-bohemian.jpg", fmt.Sprintf("A vibrant bohemian-style bedroom. %s. %s. Rich textures, eclectic patterns, warm jewel tones. Plants cascading from shelves. The room feels free-spirited, warm, and deeply personal. Soft golden light.", style("bohemian"), room("Bedroom"))),
		entry("style-luxury.jpg", fmt.Sprintf("An ultra-luxurious master suite. %s. %s. Marble, gold accents, crystal chandelier, velvet headboard. The room looks like a five-star hotel presidential suite. Evening mood lighting with warm glow. Absolute opulence.", style("luxury"), room("Bedroom"))),
		entry("style-rustic.jpg", fmt.Sprintf("A cozy rustic farmhouse kitchen. %s. %s. Reclaimed wood, stone, copper. The kitchen feels warm, inviting, and full of character. Morning light through a window above the sink. Farmhouse charm meets modern convenience.", style("rustic"), room("Kitchen"))),

		// style gallery, category images
		entry("style-modern.jpg", fmt.Sprintf("A pristine modern minimalist living room. %s. Clean white walls, sleek low-profile furniture, single statement art piece. The room is a masterclass in restraint and elegance. Natural light floods the space. Ultra-clean lines and perfect proportions.", style("modern"))),
		entry("style-scandinavian.jpg", fmt.Sprintf("A perfect Scandinavian living room. %s. Light birch wood, white walls, hygge textiles. A cozy blanket draped over a simple sofa. Candlelight and natural light creating warmth. Minimalist but deeply comfortable.", style("scandinavian"))),
		entry("style-contemporary.jpg", fmt.Sprintf("A sophisticated contemporary living room. %s. Bold statement art on the wall, designer lighting, mix of textures. The room feels current, curated, and comfortable. Warm evening light with accent lighting.", style("contemporary"))),
		entry("style-urban-loft.jpg", fmt.Sprintf("A stunning urban loft apartment. %s. Soaring double-height ceilings, exposed brick, massive windows with city skyline views. Industrial meets refined luxury. The space feels like a New York or London creative's dream home. Dramatic golden hour light.", style("urban-loft"))),
		entry("style-victorian.jpg", fmt.Sprintf("An elegant Victorian parlor room. %s. Rich dark wood, ornate fireplace, patterned wallpaper, crystal chandelier. The room transports you to a refined era of craftsmanship and elegance. Warm firelight and soft lamplight.", style("victorian"))),
		entry("style-french-country.jpg", fmt.Sprintf("A charming French country kitchen. %s. Lavender accents, distressed white furniture, copper pots, stone floor. The room feels like a Provençal farmhouse in the south of France. Soft morning light through linen curtains.", style("french-country"))),
		entry("style-mediterranean.jpg", fmt.Sprintf("A warm Mediterranean dining room. %s. Arched windows, terracotta tiles, wrought iron chandelier. The room feels like a villa overlooking the sea. Warm golden afternoon light flooding through arched doorways.", style("mediterranean"))),
		entry("style-industrial.jpg", fmt.Sprintf("A bold industrial loft living space. %s. Exposed brick, steel beams, polished concrete. Factory windows flooding light. A leather Chesterfield sofa, reclaimed wood coffee table. The space feels raw, authentic, and incredibly cool.", style("industrial"))),
		entry("style-maximalist.jpg", fmt.Sprintf("An exuberant maximalist living room. %s. Bold patterned wallpaper, rich jewel-toned velvet furniture, eclectic art collection covering the walls. Every surface tells a story. The room is bursting with personality and curated chaos.", style("maximalist"))),
		entry("style-tropical.jpg", fmt.Sprintf("A luxurious tropical resort-style living room. %s. Rattan furniture, monstera plants, ceiling fan, open to a tropical garden. The room feels like a high-end Bali resort villa. Bright natural light with dappled shadows from palms.", style("tropical"))),
		entry("style-japandi.jpg", fmt.Sprintf("A serene Japandi living room. %s. Low platform sofa, natural wood, paper shoji screen. A single bonsai tree as the focal point. The room breathes calm and intentionality. Soft diffused light creating a meditative atmosphere.", style("japandi"))),

		// feature cards
		entry("feature-speed.jpg", "A dramatic split-screen architectural visualization showing an empty room on the left transforming into a beautifully designed modern interior on the right. The left side is bare walls and empty floor. The right side is a stunning modern living room with designer furniture, art, and warm lighting. A glowing line of energy separates the two halves, representing AI transformation. Dynamic, impressive, technological."),
		entry("feature-chat.jpg", fmt.Sprintf("A beautifully designed modern living room showing subtle design iterations - as if an AI assistant is refining the space. The room features %s. Warm natural light, professional interior photography. The image conveys the idea of intelligent, iterative design refinement. Pristine and polished.", style("modern"))),
		entry("feature-4k.jpg", "An extreme close-up detail shot of luxury interior design materials. Show the intricate grain of Italian marble countertop, the weave of linen fabric on a designer chair, the brushed brass of a modern light fixture, and the texture of hand-troweled plaster wall — all in stunning ultra-high-definition detail. Macro photography quality. Every fiber, vein, and surface imperfection visible. This demonstrates 4K resolution quality."),
		entry("feature-styles.jpg", "A creative grid composition showing 4 different interior design styles in one image — each quadrant showing the same room but in a completely different style: top-left Modern Minimalist (white, clean), top-right Industrial (brick, metal), bottom-left Bohemian (colorful, eclectic), bottom-right Japandi (zen, wood). Clean grid lines separate each quadrant. Professional architectural photography in each section."),

		// studio
		entry("studio-welcome.jpg", "A subtle, atmospheric background image for a design studio application. A softly blurred luxury interior space with warm ambient lighting, showing hints of modern architecture — exposed beams, floor-to-ceiling windows with golden hour light, designer furniture silhouettes. The image should be moody, dark, and atmospheric — suitable as a background that won't compete with UI elements on top of it. Cinematic depth of field with most of the image softly out of focus."),
	}
}
