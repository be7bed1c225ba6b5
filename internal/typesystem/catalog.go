package typesystem

// Catalog entries. Footprints are (int slots, string slots, long slots).
var (
	Anim              = newAtomic(1, 0, 0, "Animation", 'A')
	Area              = newAtomic(1, 0, 0, "Area", 'R')
	Boolean           = newAtomic(1, 0, 0, "boolean", '1')
	Callback          = newAtomic(0, 0, 0, "Callback", NoDescriptor)
	Category          = newAtomic(1, 0, 0, "Category", 'y')
	Char              = newAtomic(1, 0, 0, "char", 'z')
	Color             = newAtomic(1, 0, 0, "Color", 'i') // int on the wire, printed as hex
	Container         = newAtomic(1, 0, 0, "Container", 'v')
	DbColumn          = newAtomic(1, 0, 0, "DbColumn", 'i')
	DbField           = newAtomic(1, 0, 0, "DbField", 'i')
	DbRow             = newAtomic(1, 0, 0, "DbRow", 'Ð')
	DbTable           = newAtomic(1, 0, 0, "DbTable", 'i')
	Enum              = newAtomic(1, 0, 0, "Enum", 'g')
	FontMetrics       = newAtomic(1, 0, 0, "FontMetrics", 'f')
	Graphic           = newAtomic(1, 0, 0, "Graphic", 't')
	Int               = newAtomic(1, 0, 0, "int", 'i')
	IntArray          = newAtomic(1, 0, 0, "int[]", NoDescriptor)
	Item              = newAtomic(1, 0, 0, "Item", 'o')
	ItemID            = newAtomic(1, 0, 0, "ItemId", 'i')
	Location          = newAtomic(1, 0, 0, "Location", 'c')
	LocShape          = newAtomic(1, 0, 0, "LocShape", 'H')
	Long              = newAtomic(0, 0, 1, "long", '§') // TODO: remove once no supported revision has long slots
	LongArray         = newAtomic(1, 0, 0, "long[]", NoDescriptor)
	MapID             = newAtomic(1, 0, 0, "Map", '`')
	MapElement        = newAtomic(1, 0, 0, "MapElement", 'µ')
	Model             = newAtomic(1, 0, 0, "Model", 'm')
	NamedItem         = newAtomic(1, 0, 0, "NamedItem", 'O')
	NpcDef            = newAtomic(1, 0, 0, "NpcDef", 'n')
	NpcUID            = newAtomic(1, 0, 0, "NpcUid", 'u')
	Object            = newAtomic(1, 0, 0, "Object", 'l')
	OverlayInterface  = newAtomic(1, 0, 0, "OverlayInterface", 'L')
	Skill             = newAtomic(1, 0, 0, "Skill", 'S')
	SoundEffect       = newAtomic(1, 0, 0, "SoundEff", 'P')
	Sprite            = newAtomic(1, 0, 0, "Sprite", 'd')
	String            = newAtomic(0, 1, 0, "string", 's')
	StringArray       = newAtomic(1, 0, 0, "string[]", NoDescriptor)
	Struct            = newAtomic(1, 0, 0, "Struct", 'J')
	Texture           = newAtomic(1, 0, 0, "Texture", 'x')
	TopLevelInterface = newAtomic(1, 0, 0, "TopLevelInterface", 'F')
	Unknown           = newAtomic(0, 0, 0, "??", NoDescriptor)
	Void              = newAtomic(0, 0, 0, "void", NoDescriptor)
	WidgetPtr         = newAtomic(1, 0, 0, "Widget", 'I')
)

// catalog keeps the display/search order used by ParseText.
var catalog = []*Atomic{
	Void, Callback, Boolean, Int, FontMetrics, Sprite, Model, Location, Char,
	String, Long, Unknown, WidgetPtr, ItemID, Item, NamedItem, Color, Container,
	Enum, Struct, Anim, MapID, Graphic, Skill, NpcDef, Texture, Category,
	SoundEffect, IntArray, LongArray, StringArray, DbRow, DbField, DbColumn,
	DbTable, Object, MapElement, Area, LocShape, NpcUID, OverlayInterface,
	TopLevelInterface,
}

// Catalog returns every atomic type in catalog order.
func Catalog() []*Atomic {
	out := make([]*Atomic, len(catalog))
	copy(out, catalog)
	return out
}

// LookupAtomic finds an atomic type by display name.
func LookupAtomic(name string) (*Atomic, bool) {
	for _, t := range catalog {
		if t.name == name {
			return t, true
		}
	}
	return nil, false
}
