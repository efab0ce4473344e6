package model

// Tag is the finished contract-tag record describing one pool contract.
type Tag struct {
	ContractAddress string `json:"contract_address"`
	NameTag         string `json:"name_tag"`
	ProjectName     string `json:"project_name"`
	Website         string `json:"website"`
	Note            string `json:"note"`
}
