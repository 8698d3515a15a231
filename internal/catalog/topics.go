// Package catalog holds the compiled-in topic catalog and the id conventions
// used to classify questions.
package catalog

import "github.com/Yippine/QuizForge-AI/internal/models"

// OfficialTopicID is the sentinel topic selecting every official question.
const OfficialTopicID = "OFFICIAL"

var subjects = map[models.Subject]string{
	models.SubjectL21: "人工智慧技術應用與規劃",
	models.SubjectL23: "機器學習技術與應用",
}

var topicsL21 = []models.Topic{
	{ID: "L21101", SubjectID: models.SubjectL21, Name: "自然語言處理技術與應用", FullName: "L21101-自然語言處理技術與應用", Description: "NLP技術原理與實務應用", Sequence: 1, Icon: "💬"},
	{ID: "L21102", SubjectID: models.SubjectL21, Name: "電腦視覺技術與應用", FullName: "L21102-電腦視覺技術與應用", Description: "影像識別與處理技術", Sequence: 2, Icon: "👁️"},
	{ID: "L21103", SubjectID: models.SubjectL21, Name: "生成式AI技術與應用", FullName: "L21103-生成式AI技術與應用", Description: "Generative AI 技術與應用場景", Sequence: 3, Icon: "🎨"},
	{ID: "L21104", SubjectID: models.SubjectL21, Name: "多模態人工智慧應用", FullName: "L21104-多模態人工智慧應用", Description: "多模態AI系統整合", Sequence: 4, Icon: "🔗"},
	{ID: "L21201", SubjectID: models.SubjectL21, Name: "AI導入評估", FullName: "L21201-AI導入評估", Description: "AI專案評估與可行性分析", Sequence: 5, Icon: "🔍"},
	{ID: "L21202", SubjectID: models.SubjectL21, Name: "AI導入規劃", FullName: "L21202-AI導入規劃", Description: "AI專案規劃與管理", Sequence: 6, Icon: "📋"},
	{ID: "L21203", SubjectID: models.SubjectL21, Name: "AI風險管理", FullName: "L21203-AI風險管理", Description: "AI專案風險識別與管理", Sequence: 7, Icon: "⚠️"},
	{ID: "L21301", SubjectID: models.SubjectL21, Name: "數據準備與模型選擇", FullName: "L21301-數據準備與模型選擇", Description: "數據處理與模型評估", Sequence: 8, Icon: "📊"},
	{ID: "L21302", SubjectID: models.SubjectL21, Name: "AI技術系統集成與部署", FullName: "L21302-AI技術系統集成與部署", Description: "AI系統整合與上線部署", Sequence: 9, Icon: "🚀"},
}

var topicsL23 = []models.Topic{
	{ID: "L23101", SubjectID: models.SubjectL23, Name: "機率統計之機器學習基礎應用", FullName: "L23101-機率統計之機器學習基礎應用", Description: "機率論與統計學基礎", Sequence: 10, Icon: "📈"},
	{ID: "L23102", SubjectID: models.SubjectL23, Name: "線性代數之機器學習基礎應用", FullName: "L23102-線性代數之機器學習基礎應用", Description: "線性代數數學基礎", Sequence: 11, Icon: "🔢"},
	{ID: "L23103", SubjectID: models.SubjectL23, Name: "數值優化技術與方法", FullName: "L23103-數值優化技術與方法", Description: "優化演算法與數值方法", Sequence: 12, Icon: "⚡"},
	{ID: "L23201", SubjectID: models.SubjectL23, Name: "機器學習原理與技術", FullName: "L23201-機器學習原理與技術", Description: "ML基礎理論與方法", Sequence: 13, Icon: "🤖"},
	{ID: "L23202", SubjectID: models.SubjectL23, Name: "常見機器學習演算法", FullName: "L23202-常見機器學習演算法", Description: "分類、回歸、聚類演算法", Sequence: 14, Icon: "🧮"},
	{ID: "L23203", SubjectID: models.SubjectL23, Name: "深度學習原理與框架", FullName: "L23203-深度學習原理與框架", Description: "神經網路與深度學習框架", Sequence: 15, Icon: "🧠"},
	{ID: "L23301", SubjectID: models.SubjectL23, Name: "數據準備與特徵工程", FullName: "L23301-數據準備與特徵工程", Description: "數據預處理與特徵提取", Sequence: 16, Icon: "🔧"},
	{ID: "L23302", SubjectID: models.SubjectL23, Name: "模型選擇與架構設計", FullName: "L23302-模型選擇與架構設計", Description: "模型架構設計與選擇", Sequence: 17, Icon: "🏗️"},
	{ID: "L23303", SubjectID: models.SubjectL23, Name: "模型訓練評估驗證", FullName: "L23303-模型訓練評估驗證", Description: "模型訓練與性能評估", Sequence: 18, Icon: "📊"},
	{ID: "L23304", SubjectID: models.SubjectL23, Name: "模型調整與優化", FullName: "L23304-模型調整與優化", Description: "超參數調優與模型優化", Sequence: 19, Icon: "⚙️"},
	{ID: "L23401", SubjectID: models.SubjectL23, Name: "數據隱私安全合規", FullName: "L23401-數據隱私安全合規", Description: "數據安全與隱私保護", Sequence: 20, Icon: "🔒"},
	{ID: "L23402", SubjectID: models.SubjectL23, Name: "演算法偏見與公平性", FullName: "L23402-演算法偏見與公平性", Description: "AI公平性與偏見消除", Sequence: 21, Icon: "⚖️"},
}

var officialTopic = models.Topic{
	ID:          OfficialTopicID,
	SubjectID:   models.SubjectOfficial,
	Name:        "官方題目",
	FullName:    "OFFICIAL-官方題目",
	Description: "講義練習題與範例試題",
	Sequence:    0,
	Icon:        "📘",
}

var officialSubTopics = []models.Topic{
	{ID: "OFF_L21", SubjectID: models.SubjectOfficial, Name: "人工智慧技術應用與規劃", FullName: "OFF_L21-人工智慧技術應用與規劃", Description: "官方樣題-科目1", Sequence: 1, Icon: "🎯", SourcePattern: "官方樣題-科目1"},
	{ID: "OFF_L23", SubjectID: models.SubjectOfficial, Name: "機器學習技術與應用", FullName: "OFF_L23-機器學習技術與應用", Description: "官方樣題-科目3", Sequence: 2, Icon: "🎯", SourcePattern: "官方樣題-科目3"},
	{ID: "OFF_L211", SubjectID: models.SubjectOfficial, Name: "AI相關技術應用", FullName: "OFF_L211-AI相關技術應用", Description: "講義練習題-第3章", Sequence: 3, Icon: "💬", SourcePattern: "講義練習題-科目1-第3章"},
	{ID: "OFF_L212", SubjectID: models.SubjectOfficial, Name: "AI導入評估規劃", FullName: "OFF_L212-AI導入評估規劃", Description: "講義練習題-第4章", Sequence: 4, Icon: "📋", SourcePattern: "講義練習題-科目1-第4章"},
	{ID: "OFF_L213", SubjectID: models.SubjectOfficial, Name: "AI技術應用與系統部署", FullName: "OFF_L213-AI技術應用與系統部署", Description: "講義練習題-第5章", Sequence: 5, Icon: "🚀", SourcePattern: "講義練習題-科目1-第5章"},
	{ID: "OFF_L231", SubjectID: models.SubjectOfficial, Name: "機器學習基礎數學", FullName: "OFF_L231-機器學習基礎數學", Description: "講義練習題-第3章", Sequence: 6, Icon: "📈", SourcePattern: "講義練習題-科目3-第3章"},
	{ID: "OFF_L232", SubjectID: models.SubjectOfficial, Name: "機器學習與深度學習", FullName: "OFF_L232-機器學習與深度學習", Description: "講義練習題-第4章", Sequence: 7, Icon: "🧠", SourcePattern: "講義練習題-科目3-第4章"},
	{ID: "OFF_L233", SubjectID: models.SubjectOfficial, Name: "機器學習建模與參數調校", FullName: "OFF_L233-機器學習建模與參數調校", Description: "講義練習題-第5章", Sequence: 8, Icon: "⚙️", SourcePattern: "講義練習題-科目3-第5章"},
	{ID: "OFF_L234", SubjectID: models.SubjectOfficial, Name: "機器學習治理", FullName: "OFF_L234-機器學習治理", Description: "講義練習題-第6章", Sequence: 9, Icon: "🔒", SourcePattern: "講義練習題-科目3-第6章"},
}

// All returns the official sentinel topic followed by every subject topic.
func All() []models.Topic {
	all := make([]models.Topic, 0, 1+len(topicsL21)+len(topicsL23))
	all = append(all, officialTopic)
	all = append(all, topicsL21...)
	all = append(all, topicsL23...)
	return all
}

// OfficialSubTopics returns the official sub-topics in catalog order.
func OfficialSubTopics() []models.Topic {
	out := make([]models.Topic, len(officialSubTopics))
	copy(out, officialSubTopics)
	return out
}

func SubjectName(s models.Subject) string {
	return subjects[s]
}

func TopicByID(id string) (models.Topic, bool) {
	for _, t := range All() {
		if t.ID == id {
			return t, true
		}
	}
	return models.Topic{}, false
}

func TopicByFullName(fullName string) (models.Topic, bool) {
	for _, t := range All() {
		if t.FullName == fullName {
			return t, true
		}
	}
	return models.Topic{}, false
}

func TopicsBySubject(subject models.Subject) []models.Topic {
	var out []models.Topic
	for _, t := range All() {
		if t.SubjectID == subject {
			out = append(out, t)
		}
	}
	return out
}

// OfficialSubTopic looks up an official sub-topic. Only sub-topics carry a SourcePattern.
func OfficialSubTopic(id string) (models.Topic, bool) {
	for _, t := range officialSubTopics {
		if t.ID == id {
			return t, true
		}
	}
	return models.Topic{}, false
}
