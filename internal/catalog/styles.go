package catalog

// QualityPrefix opens every prompt.
const QualityPrefix = "Generate a photorealistic, ultra high resolution 4K image. Professional architectural photography with perfect composition, natural lighting, and stunning detail. Magazine-worthy quality for Architectural Digest."

// Styles maps a design style key to its descriptor.
var Styles = map[string]string{
	"modern":         "sleek contemporary design with clean lines, minimalist furniture, neutral palette with strategic accent colors, floor-to-ceiling windows, polished concrete or hardwood floors, hidden storage, seamless surfaces",
	"scandinavian":   "light wood tones (birch, ash, pine), white or light gray walls, cozy textiles (chunky knit throws, sheepskin), hygge atmosphere, functional minimalist design, natural materials, subtle pastel accents, candles, abundant natural light",
	"japandi":        "Japanese-Scandinavian fusion, wabi-sabi elements, natural materials, muted earth tones, low furniture, zen garden influences, paper screens, bonsai, clean lines with organic touches",
	"mediterranean":  "warm terracotta tiles, whitewashed walls, arched doorways and windows, wrought iron details, olive and sage green tones, terra cotta pottery, exposed wooden beams, courtyard views, bougainvillea",
	"tropical":       "lush indoor plants (monstera, palms, bird of paradise), rattan and bamboo furniture, natural ventilation, ceiling fans, open-plan living, bright whites with tropical greens, resort-like atmosphere",
	"french-country": "rustic elegance, soft florals, weathered wood, stone floors, copper cookware, lavender accents, toile de Jouy fabric, distressed furniture, provincial charm, exposed beams",
	"art-deco":       "1920s glamour, geometric patterns, rich jewel colors, metallic accents (gold, chrome), lacquered surfaces, bold symmetry, velvet upholstery, sunburst motifs, mirrored surfaces, gatsby-era luxury",
	"mid-century":    "1950s-60s iconic design, Eames and Saarinen furniture, organic shapes, wood paneling, bold accent colors (mustard, teal, orange), geometric patterns, sunburst clocks, kidney-shaped tables",
	"victorian":      "ornate carved furniture, rich damask and brocade fabrics, dark wood (mahogany, walnut), floral wallpaper, tufted upholstery, heavy drapery, ornamental fireplace, patterned rugs, gaslight-era charm",
	"industrial":     "exposed brick walls, metal beams and ductwork, polished concrete floors, vintage factory elements, Edison bulbs and industrial lighting, raw materials (steel, iron, reclaimed wood), leather and metal furniture, high ceilings, large factory windows",
	"rustic":         "reclaimed wood beams and flooring, stone fireplace, natural materials, warm earth tones, handcrafted elements, cozy textiles (wool, linen), farmhouse charm, antler accents, copper fixtures",
	"bohemian":       "eclectic mix of patterns and textures, rich jewel tones, layered textiles, vintage and global finds, macrame, plants everywhere, floor cushions, tapestries, free-spirited expression",
	"luxury":         "high-end materials, marble surfaces, gold and brass accents, crystal chandeliers, velvet upholstery, custom millwork, statement art pieces, professional interior styling",
	"coastal":        "light and airy, ocean-inspired colors (navy, seafoam, sand), natural textures (rope, driftwood), weathered wood, linen fabrics, nautical elements, large windows with water views",
	"contemporary":   "current design trends, mix of textures, statement lighting, bold art, comfortable luxury, curated accessories, tech integration, warm neutral base with pops of color",
	"urban-loft":     "open floor plan, soaring ceilings, exposed brick and ductwork, oversized windows with city views, polished concrete floors, industrial meets refined, art gallery walls",
	"maximalist":     "bold patterns everywhere, rich saturated colors, layered textures, eclectic art collection, statement furniture, more-is-more philosophy, curated chaos, conversation-starting pieces",
	"wabi-sabi":      "beauty in imperfection, natural patina, asymmetry, rough textures, handmade ceramics, weathered wood, earth tones, simplicity, acceptance of transience, muted natural palette",
	"brutalist":      "exposed concrete surfaces, bold geometric forms, monolithic structures, raw unfinished materials, dramatic shadows and light, minimal ornamentation, strong angular shapes",
}

// Rooms maps a room type to the props and lighting that sell it.
var Rooms = map[string]string{
	"Living Room": "soft textured throw pillows on a designer sofa, open coffee table books, warm morning sunlight through floor-to-ceiling windows, lush indoor plants like fiddle leaf figs, soft woven area rug, curated artwork on walls, ambient table lamps",
	"Kitchen":     "high-end marble or quartz countertops, steaming espresso machine, professional knives on magnetic strip, copper cookware hanging, wooden cutting boards, LED strips under cabinets, fresh herbs in ceramic pots, designer bar stools",
	"Bedroom":     "rumpled high-thread-count linen sheets, stack of design books on nightstand, warm bedside lighting, soft wool throw blanket, high-end drapes with realistic folds, plush pillows, modern headboard, reading chair",
	"Office":      "modern adjustable desk lamp, high-resolution monitors, ergonomic chair, personal artifacts, clean cable management, bookshelf with design books, indoor plant, minimalist desk setup",
	"Dining Room": "designer pendant lighting, place settings with high-end dinnerware, fresh floral centerpiece, elegant upholstered chairs, wine glasses, textured table runner, ambient candlelight",
	"Bathroom":    "steam on glass shower partition, plush rolled cotton towels, luxury soap dispensers, natural stone textures, rain shower head, freestanding tub, designer fixtures, ambient lighting, fresh flowers",
}
