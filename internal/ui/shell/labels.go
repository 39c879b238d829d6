package shell

// Labels are the user-visible strings of a shell.
type Labels struct {
	Heading     []string
	Placeholder string
	Search      string
	Back        string
	Clear       string
	Recommended string
	Loading     string
	NoResults   string
	Failed      string
	Results     string // fmt verb for the count, e.g. "%s건"
	Cached      string
	SearchBar   string // collapsed mobile bar
	Hint        string
	Record      string // footer disease count, e.g. "질환 %s개"
	Switch      string
}

var korean = Labels{
	Heading:     []string{"국내 모든 임상시험 검색하고", "온라인으로 참여하기"},
	Placeholder: "질환명을 입력해 주세요.",
	Search:      "검색",
	Back:        "뒤로",
	Clear:       "지우기",
	Recommended: "추천 검색어",
	Loading:     "데이터 로딩 중...",
	NoResults:   "검색 결과가 없습니다.",
	Failed:      "검색에 실패했습니다",
	Results:     "%s건",
	Cached:      "캐시",
	SearchBar:   "질환명, 약물명 검색",
	Hint:        "F1 도움말",
	Record:      "질환 %s개",
	Switch:      "F2 화면 전환",
}

var english = Labels{
	Heading:     []string{"Search every clinical trial in Korea", "and join online"},
	Placeholder: "Enter a disease name",
	Search:      "Search",
	Back:        "Back",
	Clear:       "Clear",
	Recommended: "Recommended searches",
	Loading:     "Loading...",
	NoResults:   "No results found.",
	Failed:      "Search failed",
	Results:     "%s results",
	Cached:      "cached",
	SearchBar:   "Search diseases",
	Hint:        "F1 help",
	Record:      "%s diseases",
	Switch:      "F2 switch layout",
}

// LabelsFor returns the strings for a locale. Anything but "en" is Korean.
func LabelsFor(locale string) Labels {
	if locale == "en" {
		return english
	}
	return korean
}
