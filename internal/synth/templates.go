package synth

import "ui-architect/backend/internal/model"

// Element snippets. Each one creates a control on the `Section` declared by
// the tab/section block.
var defaultTemplates = map[model.ElementKind]string{
	model.ElementButton: `Section:CreateButton({
    Name = "Botão de Teste",
    Callback = function()
        print("Botão acionado!")
    end
})`,
	model.ElementToggle: `Section:CreateToggle({
    Name = "Ativar Recurso",
    CurrentValue = false,
    Callback = function(Value)
        print("Toggle alterado para: ", Value)
    end
})`,
	model.ElementSlider: `Section:CreateSlider({
    Name = "Ajuste de Velocidade",
    Range = {16, 100},
    Increment = 1,
    Suffix = " Spd",
    CurrentValue = 16,
    Callback = function(Value)
        print("Novo valor do Slider: ", Value)
    end
})`,
	model.ElementDropdown: `Section:CreateDropdown({
    Name = "Selecionar Modo",
    Options = {"Agressivo", "Silencioso", "Padrão"},
    CurrentOption = "Padrão",
    MultipleOptions = false,
    Callback = function(Option)
        print("Selecionado: ", Option)
    end
})`,
	model.ElementLabel: `Section:CreateLabel({
    Text = "Status: Conectado",
    Color = Color3.fromRGB(200, 200, 200)
})`,
	model.ElementTextBox: `Section:CreateInput({
    Name = "Nome do Jogador",
    PlaceholderText = "Digite aqui...",
    RemoveTextAfterFocusLost = false,
    Callback = function(Text)
        print("Input recebido: ", Text)
    end
})`,
	model.ElementScrollingFrame: `local Scroll = Section:CreateScrollingFrame({
    Name = "Registro de Eventos",
    Height = 180,
    AutoScroll = true
})
Scroll:AddLine("Painel iniciado")`,
	model.ElementColorPicker: `Section:CreateColorPicker({
    Name = "Cor da UI",
    Color = Color3.fromRGB(255, 0, 0),
    Callback = function(Value)
        print("Cor selecionada: ", Value)
    end
})`,
	model.ElementKeybind: `Section:CreateKeybind({
    Name = "Atalho de Teclado",
    CurrentKeybind = "F",
    HoldToInteract = false,
    Callback = function(Keybind)
        print("Tecla pressionada: ", Keybind)
    end
})`,
	model.ElementTabs: `local SettingsTab = Window:CreateTab({
    Name = "Configurações",
    Icon = "rbxassetid://4483345998"
})
SettingsTab:CreateSection("Preferências")`,
	model.ElementNotification: `Section:CreateButton({
    Name = "Mostrar Notificação",
    Callback = function()
        Library:Notify({
            Title = "Aviso",
            Content = "Esta é uma notificação de teste.",
            Duration = 3
        })
    end
})`,
	model.ElementSearchBar: `Section:CreateSearchBar({
    Name = "Pesquisar",
    PlaceholderText = "Buscar elementos...",
    Callback = function(Query)
        print("Pesquisando: ", Query)
    end
})`,
}
