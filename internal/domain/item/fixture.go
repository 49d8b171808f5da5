package item

// Fruits returns the twelve-record demo collection used to seed empty stores.
func Fruits() []Item {
	return []Item{
		{ID: 1, Name: "Apple", Description: "Fresh apple"},
		{ID: 2, Name: "Banana", Description: "Yellow banana"},
		{ID: 3, Name: "Cherry", Description: "Red cherry fruit"},
		{ID: 4, Name: "Date", Description: "Sweet date"},
		{ID: 5, Name: "Elderberry", Description: "Dark elderberry"},
		{ID: 6, Name: "Fig", Description: "Purple fig"},
		{ID: 7, Name: "Grape", Description: "Green grape"},
		{ID: 8, Name: "Honeydew", Description: "Sweet honeydew"},
		{ID: 9, Name: "Kiwi", Description: "Brown kiwi"},
		{ID: 10, Name: "Lemon", Description: "Yellow lemon"},
		{ID: 11, Name: "Mango", Description: "Orange mango"},
		{ID: 12, Name: "Nectarine", Description: "Sweet nectarine"},
	}
}
