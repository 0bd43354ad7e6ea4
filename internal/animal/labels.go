package animal

// characters holds the 60 dataset characters; characters[i] is index i+1.
var characters = [60]string{
	"長距離ランナーのチータ", "社交家のたぬき", "落ち着きのない猿", "フットワークの軽い子守熊", "面倒見のいい黒ひょう",
	"愛情あふれる虎", "全力疾走するチータ", "磨き上げられたたぬき", "大きな志をもった猿", "母性豊かな子守熊",
	"正直なこじか", "人気者のゾウ", "ネアカの狼", "協調性のないひつじ", "どっしりとした猿",
	"コアラのなかの子守熊", "強い意志をもったこじか", "デリケートなゾウ", "放浪の狼", "物静かなひつじ",
	"落ち着きのあるペガサス", "強靭な翼をもつペガサス", "無邪気なひつじ", "クリエイティブな狼", "穏やかな狼",
	"粘り強いひつじ", "波乱に満ちたペガサス", "優雅なペガサス", "チャレンジ精神旺盛なひつじ", "順応性のある狼",
	"リーダーとなるゾウ", "しっかり者のこじか", "活動的な子守熊", "気分屋の猿", "頼られると嬉しいひつじ",
	"好感のもたれる狼", "まっしぐらに突き進むゾウ", "華やかなこじか", "夢とロマンの子守熊", "尽す猿",
	"大器晩成のたぬき", "足腰の強いチータ", "動きまわる虎", "情熱的な黒ひょう", "サービス精神旺盛な子守熊",
	"守りの猿", "人間味あふれるたぬき", "品格のあるチータ", "ゆったりとした悠然の虎", "落ち込みの激しい黒ひょう",
	"我が道を行くライオン", "統率力のあるライオン", "感情豊かな黒ひょう", "楽天的な虎", "パワフルな虎",
	"気どらない黒ひょう", "感情的なライオン", "傷つきやすいライオン", "束縛を嫌う黒ひょう", "慈悲深い虎",
}

// fallbackAnimals is the reduced 12-animal table used when the dataset has
// no answer. It shares no indices with characters.
var fallbackAnimals = [12]string{
	"チーター", "黒ひょう", "ライオン", "トラ", "たぬき", "コアラ",
	"ゾウ", "ひつじ", "ペガサス", "オオカミ", "こじか", "サル",
}

// Character returns the character name for a dataset index, or "" when the
// index is out of range.
func Character(i DatasetIndex) string {
	if !i.Valid() {
		return ""
	}
	return characters[i-1]
}

// IndexOfCharacter returns the dataset index whose character is label.
func IndexOfCharacter(label string) (DatasetIndex, bool) {
	for i, c := range characters {
		if c == label {
			return DatasetIndex(i + 1), true
		}
	}
	return 0, false
}

// FallbackAnimal returns the fallback animal for i, or "" when out of range.
func FallbackAnimal(i FallbackIndex) string {
	if !i.Valid() {
		return ""
	}
	return fallbackAnimals[i]
}

// CharacterEntry pairs a dataset index with its character name.
type CharacterEntry struct {
	Index     DatasetIndex `json:"index"`
	Character string       `json:"character"`
}

// Characters returns the full 60-entry table in index order.
func Characters() []CharacterEntry {
	out := make([]CharacterEntry, len(characters))
	for i, c := range characters {
		out[i] = CharacterEntry{Index: DatasetIndex(i + 1), Character: c}
	}
	return out
}
