package breed

import (
	"fmt"
)

// seeds is the built-in breed table. There is no code 94.
var seeds = []Breed{
	seed(1, "Holstein-Friesian (UK&E)", 280, Dairy, false),
	seed(2, "Dairy Shorthorn (UK)", 280, Dairy, false),
	seed(3, "Ayrshire", 280, Dairy, false),
	seed(4, "Jersey (Mainland)", 280, Dairy, false),
	seed(5, "Guernsey (Mainland)", 280, Dairy, false),
	seed(6, "South Devon", 285, Beef, false),
	seed(7, "Red Poll", 280, Dairy, false),
	seed(8, "Welsh Black", 280, Beef, false),
	seed(9, "Lincoln Red", 280, Beef, false),
	seed(10, "Kerry", 280, Dairy, false),
	seed(11, "Ancient White Cattle", 280, DualPurpose, false),
	seed(12, "British Holstein", 280, Dairy, false),
	seed(13, "NZ/Aus Shorthorn", 280, Dairy, true),
	seed(14, "Dexter & Glamorgan", 280, Dairy, false),
	seed(15, "Red & White Friesian", 280, Dairy, false),
	seed(16, "Devon", 285, Beef, false),
	seed(17, "Danish Red", 280, Dairy, false),
	seed(18, "Charolais", 285, Beef, false),
	seed(19, "Hereford", 283, Beef, false),
	seed(20, "Polled Friesian", 280, Dairy, false),
	seed(21, "Aberdeen Angus", 280, Beef, false),
	seed(22, "British Dane", 280, Dairy, false),
	seed(23, "Simmental", 286, Beef, false),
	seed(24, "Meuse-Rhine-Issel", 286, DualPurpose, false),
	seed(25, "Blonde D'Aquitaine", 285, Beef, false),
	seed(26, "Maine Anjou", 280, DualPurpose, false),
	seed(27, "Minor Breeds/Other", 280, DualPurpose, false),
	seed(28, "Montbeliarde", 280, Dairy, false),
	seed(29, "Unknown Breed", 280, DualPurpose, false),
	seed(30, "Gloucester", 280, Dairy, false),
	seed(31, "Brown Swiss", 285, Dairy, false),
	seed(32, "Sussex", 285, Beef, false),
	seed(33, "Limousin", 288, Beef, false),
	seed(34, "Murray Grey", 285, Beef, false),
	seed(35, "Gelbvieh", 285, Beef, false),
	seed(36, "Normande", 284, Dairy, false),
	seed(37, "Belgian Blue", 280, Beef, false),
	seed(38, "Beef Shorthorn", 280, Beef, false),
	seed(39, "Chianina", 286, Beef, false),
	seed(40, "European Shorthorn", 280, Dairy, true),
	seed(41, "Longhorn", 280, Beef, false),
	seed(42, "Water Buffalo", 311, Dairy, false),
	seed(43, "Marchigiana", 285, Beef, false),
	seed(44, "Romagnola", 285, Beef, false),
	seed(45, "Galloway", 280, Beef, false),
	seed(46, "Irish Holstein-Friesian", 285, Dairy, false),
	seed(47, "Australian Holstein-Friesian", 280, Dairy, true),
	seed(48, "Polish Holstein-Friesian", 280, Dairy, true),
	seed(49, "Angler", 280, Dairy, false),
	seed(50, "Shetland", 280, Dairy, false),
	seed(51, "Blue Albion", 280, DualPurpose, false),
	seed(52, "Swedish Holstein-Friesian", 280, Dairy, true),
	seed(53, "Rotbunte", 285, DualPurpose, false),
	seed(54, "Spanish Holstein-Friesian", 285, Dairy, false),
	seed(55, "Piemontese", 285, Beef, false),
	seed(56, "Salers", 280, Beef, false),
	seed(57, "Highland/Luing", 280, Beef, false),
	seed(58, "Irish Moiled", 280, Dairy, false),
	seed(59, "Swedish Red", 280, Dairy, true),
	seed(60, "German Holstein-Friesian", 280, Dairy, true),
	seed(61, "Danish Holstein-Friesian", 280, Dairy, true),
	seed(62, "New Zealand Holstein-Friesian", 280, Dairy, true),
	seed(63, "Dutch Holstein-Friesian", 280, Dairy, true),
	seed(64, "Canadian Holstein-Friesian", 280, Dairy, true),
	seed(65, "American Holstein-Friesian", 280, Dairy, true),
	seed(66, "European Jersey", 280, Dairy, true),
	seed(67, "North American Guernsey", 280, Dairy, true),
	seed(68, "New Zealand/Australian Jersey", 280, Dairy, true),
	seed(69, "North American Shorthorn", 280, Dairy, true),
	seed(70, "North American Ayrshire", 280, Dairy, true),
	seed(71, "French Holstein-Friesian", 280, Dairy, true),
	seed(72, "Italian Holstein-Friesian", 280, Dairy, true),
	seed(73, "Finnish Ayrshire", 280, Dairy, true),
	seed(74, "Island Jersey", 280, Dairy, true),
	seed(75, "Island Guernsey", 280, Dairy, true),
	seed(76, "North American Jersey", 280, Dairy, true),
	seed(77, "Norwegian Red/Ayrshire", 280, Dairy, true),
	seed(78, "New Zealand/Australian Ayrshire", 280, Dairy, true),
	seed(79, "New Zealand/Australian Guernsey", 280, Dairy, true),
	seed(80, "BGS Herd Book", 149, Dairy, false),
	seed(81, "Anglo Nubian", 149, Dairy, false),
	seed(82, "Saanen", 149, Dairy, false),
	seed(83, "Toggenburg", 149, Dairy, false),
	seed(84, "British Alpine", 149, Dairy, false),
	seed(85, "British Saanen", 149, Dairy, false),
	seed(86, "British Toggenburg", 149, Dairy, false),
	seed(87, "Golden Guernsey", 149, Dairy, false),
	seed(88, "English Guernsey", 149, Dairy, false),
	seed(89, "Other Breeds (goats)", 149, Dairy, false),
	seed(90, "BGS Foundation Book", 149, Dairy, false),
	seed(91, "Goats (LP305)", 149, Dairy, false),
	seed(92, "BGS Identity Register G", 149, Dairy, false),
	seed(93, "BGS Supplementary Register", 149, Dairy, false),
	seed(95, "Milksheep", 147, Dairy, false),
	seed(96, "Friesland", 147, Dairy, false),
	seed(97, "Oldenberg", 147, Dairy, false),
	seed(98, "Dorset", 147, Dairy, false),
	seed(99, "Other Breeds (sheep)", 147, Dairy, false),
}

func seed(code int, name string, gestation int, t Type, imported bool) Breed {
	return Breed{
		Code:            code,
		EquivalentCode:  code,
		Name:            name,
		GestationPeriod: gestation,
		Type:            t,
		IsImported:      imported,
	}
}

func seedFor(code int) Breed {
	for _, s := range seeds {
		if s.Code == code {
			return s
		}
	}
	panic(fmt.Sprintf("breed: no seed for code %d", code))
}
