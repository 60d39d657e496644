package conversation

const defaultFallback = "Je suis votre assistant pour la préinscription à ICT University. 🎓 Comment puis-je vous aider aujourd'hui ? (programmes, admission, frais, inscription...)"

var fallbacks = map[Intent]string{
	IntentPreinscription: "Je serais ravi de vous aider avec votre préinscription ! 🎓 Pour commencer, cliquez sur le bouton 'Préinscription' ci-dessus ou dites-moi quel programme vous intéresse (Licence ou Master).",
	IntentProgrammes:     "Nous proposons des programmes en Licence et Master dans plusieurs domaines:\n\n📚 Licence: Génie Logiciel, Réseaux, Cybersécurité, IA, Data Science\n📚 Master: Génie Logiciel Avancé, Sécurité SI, IA & Big Data, Cloud & DevOps\n\nQuel domaine vous intéresse ? 🎯",
	IntentFrais:          "💰 Nos frais pour 2024-2025:\n\n**Licence:**\n- Inscription: 50,000 FCFA\n- Scolarité: 850,000 FCFA/an\n\n**Master:**\n- Inscription: 75,000 FCFA\n- Scolarité: 1,200,000 FCFA/an\n\nDes facilités de paiement sont disponibles. Souhaitez-vous plus de détails ? 📊",
	IntentAdmission:      "📋 Documents requis:\n\n**Licence:**\n- Baccalauréat\n- Relevé de notes\n- Acte de naissance\n- 4 photos\n\n**Master:**\n- Licence (informatique)\n- Relevés de notes\n- CV + Lettre de motivation\n\nVoulez-vous commencer votre préinscription ? ✅",
	IntentCalendrier:     "📅 Calendrier académique:\n\n- Préinscriptions: Juillet - Septembre\n- Rentrée: Octobre 2024\n- Examens S1: Janvier 2025\n- Examens S2: Juin 2025\n\nC'est le moment idéal pour vous préinscrire ! 🎓",
	IntentContact:        "📞 Comment nous contacter:\n\n- 📧 Email: admissions@ict-university.cm\n- 📱 Tél: +237 6XX XXX XXX\n- 🌐 Site: www.ict-university.cm\n- 📍 Adresse: Yaoundé, Cameroun\n\nPuis-je vous aider avec autre chose ? 😊",
	IntentSalutation:     "Bonjour ! 👋 Je suis votre assistant virtuel pour ICT University.\n\nJe peux vous aider avec:\n- 🎓 Informations sur nos programmes\n- 📝 Processus de préinscription\n- 💰 Frais et modalités\n- 📅 Dates importantes\n\nComment puis-je vous assister aujourd'hui ? 😊",
	IntentAide:           "Je suis là pour vous aider ! 🤝\n\nPosez-moi des questions sur:\n✅ Les programmes (Licence/Master)\n✅ Les conditions d'admission\n✅ Les frais de scolarité\n✅ Les dates de préinscription\n✅ Comment vous inscrire\n\nQue souhaitez-vous savoir ? 💡",
}

// Fallback returns the canned answer for intent. General and unknown intents
// share the same default paragraph.
func Fallback(intent Intent) string {
	if text, ok := fallbacks[intent]; ok {
		return text
	}
	return defaultFallback
}
