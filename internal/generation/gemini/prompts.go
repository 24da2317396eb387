package gemini

import (
	"fmt"
	"strings"

	"github.com/paptec/pregador/internal/generation"
)

// Prompts are written in European Portuguese and pin the Bible version to
// Almeida Corrigida, matching the product's audience.

func sermonPrompt(req generation.SermonRequest) string {
	var b strings.Builder

	b.WriteString("Atue como um teólogo experiente e pastor sábio pentecostal. Crie um esboço de pregação completo seguindo RIGOROSAMENTE a estrutura homilética abaixo.\n\n")
	fmt.Fprintf(&b, "Tema/Assunto: %s\n", req.Topic)
	if req.Reference != "" {
		fmt.Fprintf(&b, "Base Bíblica Principal: %s\n", req.Reference)
	}
	fmt.Fprintf(&b, "Público-alvo: %s\n", req.Audience)
	fmt.Fprintf(&b, "Estilo da Pregação: %s\n", req.Tone)

	b.WriteString(`
ESTRUTURA OBRIGATÓRIA (Siga isto no conteúdo gerado):

1. INTRODUÇÃO (Escreva um texto fluido cobrindo estes 4 elementos):
   a) Abertura/Quebra-gelo: Algo para captar a atenção.
   b) Contextualização: Onde estamos no texto/história.
   c) Tema e Tese: O que será pregado.
   d) Relevância: Por que ouvir isso hoje?

2. DESENVOLVIMENTO (Gere pontos principais, onde CADA PONTO deve conter):
   a) Explicação/Exegese: O que o texto diz originalmente.
   b) Referências Cruzadas: Cite versículos de OUTROS livros da Bíblia que confirmam este ponto (A Bíblia explica a Bíblia).
   c) Ilustração: Um exemplo ou metáfora.
   d) Aplicação (IMPORTANTE): Como viver isso na prática.

3. CONCLUSÃO (Escreva um texto fluido cobrindo estes 3 elementos):
   a) Recapitulação: Resumo breve dos pontos.
   b) Apelo/Desafio: Chamada à mudança.
   c) Fechamento Inspirador: Frase final marcante.

Instruções Adicionais IMPORTANTES:
1. O texto deve ser escrito estritamente em Português de Portugal / Angola (norma culta europeia).
2. Use EXCLUSIVAMENTE a versão da Bíblia João Ferreira de Almeida Corrigida (ARC).
3. A linguagem deve ser ungida, inspiradora e teologicamente ortodoxa.
4. INCLUSÃO DO PREGADOR ("NÓS"): Ao falar com o povo, evite "Vocês devem". Use sempre "Nós devemos", "Nós precisamos", "Em nossas vidas". O pregador deve se incluir na mensagem, mostrando humildade e que a palavra também é para ele.
5. REFERÊNCIAS EXTERNAS: Enriqueça o sermão citando outros textos bíblicos (Antigo e Novo Testamento) que não sejam o texto base, para dar peso teológico aos argumentos.

Retorne APENAS o JSON conforme o schema definido.
`)

	return b.String()
}

func themesPrompt(category string) string {
	return fmt.Sprintf(`Gere 5 sugestões de temas para pregações bíblicas profundas baseadas na categoria ou sentimento: "%s".

Requisitos:
1. Baseie-se estritamente na Bíblia Almeida Corrigida (ARC).
2. Português de Portugal/Angola.
3. Seja criativo, profundo teologicamente e relevante para a igreja atual.

Retorne uma lista JSON.
`, category)
}

func passagePrompt(reference string) string {
	return fmt.Sprintf(`Forneça o texto bíblico completo para a referência: "%s".

Requisitos:
1. Use EXCLUSIVAMENTE a versão João Ferreira de Almeida Corrigida (ARC).
2. Português de Portugal/Angola.
3. Não adicione comentários, apenas o texto com os números dos versículos.
4. Se a referência for inválida, responda educadamente que não foi encontrada.
`, reference)
}

func dictionaryPrompt(query string) string {
	return fmt.Sprintf(`Aja como um Dicionário Bíblico, Teológico, Grego e Hebraico Completo.

Defina o termo ou explique o conceito: "%s".

Requisitos:
1. Forneça a etimologia (origem da palavra) se relevante (Hebraico/Grego).
2. Explique o contexto histórico e cultural.
3. Forneça referências bíblicas onde o termo aparece.
4. Use Português de Portugal/Angola.
5. Seja acadêmico mas acessível a pregadores.
`, query)
}

func devotionalPrompt(reference string) string {
	var b strings.Builder

	b.WriteString("Crie um Guia de Devocional e Leitura Bíblica.\n")
	if reference != "" {
		fmt.Fprintf(&b, "ATENÇÃO: Baseie o devocional ESPECIFICAMENTE neste texto: %q.\n", reference)
	} else {
		b.WriteString("O objetivo é sugerir uma leitura para o usuário criar o hábito. Sugira 1 capítulo bíblico variado.\n")
	}

	b.WriteString(`
Estrutura:
1. Plano de Leitura: Indique o texto usado.
2. Versículo Chave: O texto principal desse capítulo.
3. Meditação: Uma reflexão profunda, consoladora e motivadora sobre o texto (aprox. 200 palavras). Use linguagem inclusiva ("Nós").
4. Oração: Uma oração curta baseada no texto.
5. Passo Prático: Uma pequena ação para praticar o ensino hoje.

Idioma: Português de Portugal/Angola.
Bíblia: Almeida Corrigida (ARC).

Retorne apenas JSON.
`)

	return b.String()
}

func programPrompt(req generation.ProgramRequest) string {
	var b strings.Builder

	b.WriteString("Crie um Programa de Culto / Liturgia detalhado e organizado para uma igreja evangélica/pentecostal.\n\n")
	fmt.Fprintf(&b, "Tipo de Culto: %s\n", req.ServiceType)
	fmt.Fprintf(&b, "Tema: %s\n", req.Theme)
	fmt.Fprintf(&b, "Duração Total: %s\n", req.Duration)
	if req.CustomSegments != "" {
		fmt.Fprintf(&b, "Segmentos obrigatórios a incluir: %s\n", req.CustomSegments)
	}

	b.WriteString(`
Gere uma lista sequencial de itens (do início ao fim) com horários sugeridos ou duração de cada parte.
Inclua: Abertura, Louvores (sugira hinos da Harpa ou Corinhos se apropriado), Leitura da Palavra, Ofertório, Pregação, Avisos e Bênção Apostólica.

Idioma: Português de Portugal/Angola.

Retorne JSON.
`)

	return b.String()
}
