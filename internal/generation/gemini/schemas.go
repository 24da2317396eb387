package gemini

import "encoding/json"

// Response schemas passed to the model so structured answers come back as
// parseable JSON. Property descriptions are in Portuguese because the whole
// product surface is.

var sermonSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"title": {"type": "STRING", "description": "Um título cativante para a pregação"},
		"keyVerse": {"type": "STRING", "description": "O texto do versículo chave (Versão Almeida Corrigida)"},
		"keyVerseReference": {"type": "STRING", "description": "A referência do versículo (ex: João 3:16)"},
		"introduction": {"type": "STRING", "description": "Introdução contendo: Abertura/Quebra-gelo, Contextualização, Tema/Tese e Relevância."},
		"points": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"title": {"type": "STRING", "description": "Título do ponto da pregação"},
					"description": {"type": "STRING", "description": "Desenvolvimento contendo: Explicação, Ilustração e Aplicação (usando 'Nós')."},
					"scriptureReference": {"type": "STRING", "description": "Versículos de apoio de OUTROS livros da Bíblia (Referências Cruzadas) que confirmam este ponto."}
				},
				"required": ["title", "description", "scriptureReference"]
			}
		},
		"conclusion": {"type": "STRING", "description": "Conclusão contendo: Recapitulação, Apelo/Desafio (usando 'Nós') e Fechamento Inspirador."}
	},
	"required": ["title", "keyVerse", "keyVerseReference", "introduction", "points", "conclusion"]
}`)

var themesSchema = json.RawMessage(`{
	"type": "ARRAY",
	"items": {
		"type": "OBJECT",
		"properties": {
			"title": {"type": "STRING", "description": "Título do tema sugerido"},
			"reference": {"type": "STRING", "description": "Referência bíblica principal (ex: Salmos 23:1)"},
			"context": {"type": "STRING", "description": "Breve explicação do porquê este tema é relevante"}
		},
		"required": ["title", "reference", "context"]
	}
}`)

var devotionalSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"readingPlan": {"type": "STRING", "description": "A referência completa usada (ex: Efésios 4:1-10)"},
		"keyVerse": {"type": "STRING", "description": "Um versículo chave para memorizar dentro do texto"},
		"meditation": {"type": "STRING", "description": "Uma reflexão profunda de 3 parágrafos sobre o texto"},
		"prayer": {"type": "STRING", "description": "Uma oração guiada baseada no texto"},
		"actionStep": {"type": "STRING", "description": "Um pequeno desafio prático para viver a palavra hoje"}
	},
	"required": ["readingPlan", "keyVerse", "meditation", "prayer", "actionStep"]
}`)

var programSchema = json.RawMessage(`{
	"type": "OBJECT",
	"properties": {
		"title": {"type": "STRING", "description": "Nome do Culto (Ex: Culto de Celebração)"},
		"theme": {"type": "STRING", "description": "Tema do culto"},
		"date": {"type": "STRING", "description": "Data sugestiva"},
		"items": {
			"type": "ARRAY",
			"items": {
				"type": "OBJECT",
				"properties": {
					"time": {"type": "STRING", "description": "Horário ou duração (Ex: 10:00 ou 15 min)"},
					"activity": {"type": "STRING", "description": "Nome da atividade (Louvor, Palavra, Ofertório)"},
					"description": {"type": "STRING", "description": "Detalhes do que fazer neste momento"},
					"responsible": {"type": "STRING", "description": "Sugestão de quem dirige (Ministro, Pastor, Grupo de Louvor)"}
				},
				"required": ["time", "activity", "description"]
			}
		}
	},
	"required": ["title", "theme", "items"]
}`)
