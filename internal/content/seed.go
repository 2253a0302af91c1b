package content

import "time"

const storeURL = "https://peacockcosmeticos.com.br/loja"

// Default returns the seed document written when no content exists yet.
func Default(version string, now time.Time) *Document {
	d := &Document{
		Metadata: Metadata{
			Title:          "Peecock - Sérum vegano para crescimento de cílios",
			Description:    "Transforme seus cílios em apenas 7 dias com o sérum Peecock. Vegano, seguro e eficaz. Frete grátis para compras acima de R$140!",
			Keywords:       "sérum para cílios, crescimento de cílios, cílios longos, cílios volumosos, cosmético vegano, beleza natural, cuidados com cílios, Peecock",
			Author:         "Peecock Cosméticos",
			OGTitle:        "Peecock - Sérum vegano para crescimento de cílios",
			OGDescription:  "Transforme seus cílios em apenas 7 dias com o sérum Peecock. Vegano, seguro e eficaz. Frete grátis para compras acima de R$140!",
			TwitterSite:    "@peecockbr",
			TwitterCreator: "@peecockbr",
		},
		Company: Company{
			Name:    "Peecock Cosméticos",
			CNPJ:    "49.861.363/0001-00",
			Address: "Rua Benjamin Constant, 2154 - Centro - Piracicaba - SP",
			Email:   "sac@peacockcosmeticos.com.br",
			Phone:   "+55-19-99999-9999",
		},
		SocialMedia: SocialMedia{
			Facebook:  "https://www.facebook.com/profile.php?id=61555633298474",
			Instagram: "https://www.instagram.com/peecockbr/",
			TikTok:    "https://www.tiktok.com/@peecockcosmeticos",
		},
		BuyButtons: []BuyButton{
			{ID: "header-buy", Text: "Comprar agora", URL: storeURL, Location: SlotHeader},
			{ID: "main-cta-1", Text: "Clique e compre já!", URL: storeURL, Location: SlotHero},
			{ID: "transform-cta", Text: "Transforme seus cílios com Peecock!", URL: storeURL, Location: SlotResults},
			{ID: "main-cta-2", Text: "Clique e compre já!", URL: storeURL, Location: SlotBenefits},
			{ID: "shipping-cta", Text: "Compre a partir de duas unidades e ganhe <b>frete grátis!</b>", URL: storeURL, Location: SlotShipping},
		},
		MainHeadings: MainHeadings{
			Hero:           "Peecock:<br>o segredo por trás de cílios mais saudáveis, longos e volumosos!",
			WhyChoose:      "Por que escolher o sérum<br>de crescimento para cílios <span>Peecock?</span>",
			TargetAudience: "O Sérum Peecock <span>é para você que:</span>",
			HowToUse:       "<span>Como usar</span> o sérum de crescimento para cílios?",
		},
		ProductFeatures: []ProductFeature{
			{Title: "Fórmula vegana", Description: "Sem ingredientes de origem animal e não testado em animais."},
			{Title: "Resultados em 7 dias", Description: "Cílios visivelmente mais longos e volumosos desde a primeira semana."},
			{Title: "Aprovado pela ANVISA"},
		},
		Testimonials: []Testimonial{
			{ID: "t1", Name: "Ana", Quote: "Meus cílios nunca estiveram tão bonitos!", Image: "/uploads/testimonial-ana.webp"},
			{ID: "t2", Name: "Juliana", Quote: "Em duas semanas já vi diferença.", Image: "/uploads/testimonial-juliana.webp"},
		},
		DetailedTestimonials: []DetailedTestimonial{
			{Name: "Carla", Quote: "Usei o sérum todas as noites por um mês e hoje não preciso mais de cílios postiços."},
		},
		TargetAudience: []AudienceItem{
			{Title: "Tem cílios finos", Description: "Quer fortalecer e dar volume aos fios de forma natural."},
			{Title: "Usa extensão de cílios", Description: "Precisa recuperar os fios naturais entre uma aplicação e outra."},
		},
		HowToUse: []HowToUseStep{
			{Step: "1", Instruction: "Remova a maquiagem e limpe bem a região dos olhos."},
			{Step: "2", Instruction: "Aplique o sérum na raiz dos cílios superiores, uma vez ao dia, à noite."},
			{Step: "3", Instruction: "Repita diariamente para manter os resultados."},
		},
		FAQ: []FAQ{
			{Question: "Em quanto tempo vejo resultados?", Answer: "A maioria das clientes percebe diferença em 7 a 15 dias de uso contínuo."},
			{Question: "Posso usar com lentes de contato?", Answer: "Sim. Retire as lentes antes da aplicação e aguarde alguns minutos para recolocá-las."},
		},
		Images: Images{
			Logo:          "/uploads/logo-peecock.png",
			AnvisaSeal:    "/uploads/selo-anvisa.png",
			EfficacyProof: []string{},
			BeforeAfter:   []string{},
			TrustBadges:   []string{},
		},
		LastUpdated: now,
		Version:     version,
	}
	d.Normalize()
	return d
}
