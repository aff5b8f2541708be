package rule

type GetRulesInput struct {
}

type GetRulesOutput struct {
	Rules []string
}

type SaveRulesInput struct {
	Rules []string
}
