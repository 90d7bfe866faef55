package sample

import "github.com/fwojciec/pagekit"

// Restaurant returns the restaurant sample page.
func Restaurant() *pagekit.Page {
	return newTemplate("レストランのサンプル",
		&pagekit.HeroData{
			Heading:    "旬の食材を、心を込めて",
			Subheading: "地元の農家から届く野菜と魚でつくる季節のコース",
			CTAText:    "ご予約はこちら",
			CTALink:    "#reserve",
		},
		&pagekit.FeaturesData{Items: []pagekit.FeatureItem{
			{Title: "産地直送の食材", Body: "毎朝仕入れる新鮮な食材だけを使用しています。"},
			{Title: "季節のコース", Body: "月替わりのコースで旬の味をお楽しみください。"},
			{Title: "貸切のご相談", Body: "記念日や会食など少人数の貸切にも対応します。"},
		}},
		&pagekit.TestimonialsData{Items: []pagekit.Testimonial{
			{Name: "田中様", Quote: "料理はもちろん、スタッフの心配りが素晴らしかったです。"},
			{Name: "佐藤様", Quote: "記念日に利用しました。また来たいと思えるお店です。"},
		}},
		&pagekit.FAQData{Items: []pagekit.FAQItem{
			{Q: "予約は必要ですか？", A: "ご予約優先ですが、空きがあれば当日もご案内できます。"},
			{Q: "アレルギーに対応できますか？", A: "ご予約時にお知らせいただければ対応いたします。"},
			{Q: "駐車場はありますか？", A: "近隣のコインパーキングをご利用ください。"},
		}},
		&pagekit.FooterData{
			CompanyName: "レストラン サンプル",
			Links: []pagekit.FooterLink{
				{Label: "アクセス", URL: "#access"},
				{Label: "ご予約", URL: "#reserve"},
				pagekit.DefaultContactLink(),
			},
		},
	)
}

// Recruit returns the recruiting sample page.
func Recruit() *pagekit.Page {
	return newTemplate("採用サイトのサンプル",
		&pagekit.HeroData{
			Heading:    "未来をつくる仲間を募集しています",
			Subheading: "挑戦を歓迎するチームで、あなたの力を発揮してください",
			CTAText:    "エントリーする",
			CTALink:    "#entry",
		},
		&pagekit.FeaturesData{Items: []pagekit.FeatureItem{
			{Title: "柔軟な働き方", Body: "リモートワークとフレックスタイムを導入しています。"},
			{Title: "成長を支える制度", Body: "研修や書籍購入の費用を会社が負担します。"},
			{Title: "フラットな組織", Body: "役職に関係なく意見を交わせる文化があります。"},
		}},
		&pagekit.FAQData{Items: []pagekit.FAQItem{
			{Q: "未経験でも応募できますか？", A: "職種によっては未経験の方も歓迎しています。"},
			{Q: "選考の流れを教えてください。", A: "書類選考、面接二回、内定の順に進みます。"},
		}},
		&pagekit.FooterData{
			CompanyName: "サンプル株式会社 採用担当",
			Links: []pagekit.FooterLink{
				{Label: "募集要項", URL: "#jobs"},
				{Label: "エントリー", URL: "#entry"},
			},
		},
	)
}

// Service returns the service sample page. It doubles as the fallback
// template when an import fails.
func Service() *pagekit.Page {
	return newTemplate("サービス紹介のサンプル",
		&pagekit.HeroData{
			Heading:    "業務をもっとシンプルに",
			Subheading: "チームの作業を一つにまとめるクラウドサービス",
			CTAText:    pagekit.DefaultContactLink().Label,
			CTALink:    pagekit.DefaultContactLink().URL,
		},
		&pagekit.FeaturesData{Items: []pagekit.FeatureItem{
			{Title: "かんたん導入", Body: "アカウントを作成したその日から使い始められます。"},
			{Title: "安心のセキュリティ", Body: "通信と保存データはすべて暗号化されています。"},
			{Title: "手厚いサポート", Body: "専任の担当者が導入から運用まで支援します。"},
		}},
		&pagekit.TestimonialsData{Items: []pagekit.Testimonial{
			{Name: "株式会社A", Quote: "作業時間が半分になり、本来の業務に集中できています。"},
			{Name: "B社 情報システム部", Quote: "導入がスムーズで、社内の評判も上々です。"},
		}},
		&pagekit.FAQData{Items: []pagekit.FAQItem{
			{Q: "無料で試せますか？", A: "14日間の無料トライアルをご用意しています。"},
			{Q: "解約はいつでもできますか？", A: "管理画面からいつでも解約できます。"},
		}},
		&pagekit.FooterData{
			CompanyName: "サンプル株式会社",
			Links: []pagekit.FooterLink{
				{Label: "料金", URL: "#pricing"},
				{Label: "プライバシーポリシー", URL: "#privacy"},
				pagekit.DefaultContactLink(),
			},
		},
	)
}

// newTemplate assembles a sample page from its payloads, in the order given.
func newTemplate(title string, data ...pagekit.SectionData) *pagekit.Page {
	sections := make([]pagekit.Section, len(data))
	for i, d := range data {
		sections[i] = pagekit.NewSection(string(d.SectionType())+"-1", d)
	}
	return &pagekit.Page{
		Title:  title,
		Status: pagekit.StatusDraft,
		Meta: pagekit.Meta{
			Confidence: pagekit.ConfidenceHigh,
			Notes:      []string{},
		},
		Sections: sections,
	}
}
