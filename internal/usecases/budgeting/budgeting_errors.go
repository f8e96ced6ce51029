package budgeting

import "errors"

// Erros específicos para o contexto de alocação de verba
var (
	// ErrNoChannelsSelected indica uma alocação sem nenhum canal selecionado
	ErrNoChannelsSelected = errors.New("nenhum canal de publicação selecionado")

	// Erros de banco de dados
	ErrSaveCampaigns  = errors.New("erro ao salvar campanhas")
	ErrFetchCampaigns = errors.New("erro ao buscar campanhas")
)
