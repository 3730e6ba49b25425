package keys

// HelpCategory organizes commands by function
type HelpCategory string

const (
	HelpCategoryMenus      HelpCategory = "Menus"
	HelpCategoryTabs       HelpCategory = "Tabs"
	HelpCategoryNavigation HelpCategory = "Navigation"
	HelpCategoryOther      HelpCategory = "Other"
	HelpCategoryUncategory HelpCategory = "Uncategorized" // For keys without categories
)

// KeyHelpInfo adds extended help information to key bindings
type KeyHelpInfo struct {
	Description string       // Extended description for help text
	Category    HelpCategory // Category for organizing in help screens
}

// KeyHelpMap maps KeyNames to their help information
var KeyHelpMap = map[KeyName]KeyHelpInfo{
	// Menus category
	KeyMenu: {Description: "Open the focused pane's context menu", Category: HelpCategoryMenus},
	KeyEsc:  {Description: "Dismiss the visible menu or modal", Category: HelpCategoryMenus},

	// Tabs category
	KeyNewTab:   {Description: "Open a new local tab", Category: HelpCategoryTabs},
	KeyCloseTab: {Description: "Close the focused tab", Category: HelpCategoryTabs},
	KeyNextTab:  {Description: "Focus the next tab", Category: HelpCategoryTabs},
	KeyPrevTab:  {Description: "Focus the previous tab", Category: HelpCategoryTabs},

	// Navigation category
	KeyFocusNext: {Description: "Cycle focus between sidebar, terminal and files", Category: HelpCategoryNavigation},
	KeySearch:    {Description: "Search connection profiles", Category: HelpCategoryNavigation},
	KeyRefresh:   {Description: "Refresh the file listing", Category: HelpCategoryNavigation},

	// Other category
	KeyQuit: {Description: "Quit the application", Category: HelpCategoryOther},
	KeyHelp: {Description: "Show help screen", Category: HelpCategoryOther},
}

// GetKeyHelp returns the help information for a key
func GetKeyHelp(keyName KeyName) KeyHelpInfo {
	info, exists := KeyHelpMap[keyName]
	if !exists {
		return KeyHelpInfo{
			Description: "No description",
			Category:    HelpCategoryUncategory,
		}
	}
	return info
}

// GetKeysInCategory returns all key bindings in a given category
func GetKeysInCategory(category HelpCategory) []KeyName {
	var keys []KeyName
	for k, info := range KeyHelpMap {
		if info.Category == category {
			keys = append(keys, k)
		}
	}
	return keys
}

// GetAllCategories returns all categories that have at least one key
func GetAllCategories() []HelpCategory {
	categoryMap := make(map[HelpCategory]bool)
	for _, info := range KeyHelpMap {
		categoryMap[info.Category] = true
	}

	categories := make([]HelpCategory, 0, len(categoryMap))
	for category := range categoryMap {
		categories = append(categories, category)
	}
	return categories
}
